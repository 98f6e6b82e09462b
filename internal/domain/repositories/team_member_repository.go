package repositories

import (
	"context"

	"cenit-labs.backend/internal/domain/entities"
)

type TeamMemberRepository interface {
	List(ctx context.Context) ([]*entities.TeamMember, error)
	GetByID(ctx context.Context, id string) (*entities.TeamMember, error)
	Create(ctx context.Context, member *entities.TeamMember) error
	// Update replaces every column except id and display_order; optional
	// fields absent from the payload are written as NULL.
	Update(ctx context.Context, member *entities.TeamMember) error
	// Delete is idempotent: deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
	// Reorder applies the batch as a single all-or-nothing unit.
	Reorder(ctx context.Context, updates []entities.OrderUpdate) error
}
