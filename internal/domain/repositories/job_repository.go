package repositories

import (
	"context"

	"cenit-labs.backend/internal/domain/entities"
)

type JobRepository interface {
	// List returns active postings only.
	List(ctx context.Context) ([]*entities.Job, error)
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	Create(ctx context.Context, job *entities.Job) error
	Update(ctx context.Context, job *entities.Job) error
	// Delete flags the posting inactive; unknown ids succeed.
	Delete(ctx context.Context, id string) error
}
