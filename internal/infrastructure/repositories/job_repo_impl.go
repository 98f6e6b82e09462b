package repositories

import (
	"context"
	"sync/atomic"

	"gorm.io/gorm"

	"cenit-labs.backend/internal/domain/entities"
	domainerrors "cenit-labs.backend/internal/domain/errors"
)

type JobRepository struct {
	db      *gorm.DB
	variant atomic.Int32
}

func NewJobRepository(db *gorm.DB, variant SchemaVariant) *JobRepository {
	r := &JobRepository{db: db}
	r.variant.Store(int32(variant))
	return r
}

func (r *JobRepository) Variant() SchemaVariant {
	return SchemaVariant(r.variant.Load())
}

func (r *JobRepository) latch(v SchemaVariant) {
	r.variant.CompareAndSwap(int32(SchemaAuto), int32(v))
}

// List returns active postings. Legacy stores predate the is_active column
// and never soft-delete, so the fallback reads every row.
func (r *JobRepository) List(ctx context.Context) ([]*entities.Job, error) {
	var rows []map[string]interface{}
	var err error

	if r.Variant() == SchemaLegacy {
		err = r.db.WithContext(ctx).Raw(`SELECT * FROM jobs`).Scan(&rows).Error
	} else {
		err = r.db.WithContext(ctx).Raw(`SELECT * FROM jobs WHERE is_active = ?`, true).Scan(&rows).Error
		if err == nil {
			r.latch(SchemaCanonical)
		} else if isUnknownColumnErr(err) {
			r.latch(SchemaLegacy)
			err = r.db.WithContext(ctx).Raw(`SELECT * FROM jobs`).Scan(&rows).Error
		}
	}
	if err != nil {
		return nil, err
	}

	jobs := make([]*entities.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, jobFromRow(row))
	}
	return jobs, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Raw(`SELECT * FROM jobs WHERE id = ?`, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return jobFromRow(rows[0]), nil
}

func (r *JobRepository) Create(ctx context.Context, job *entities.Job) error {
	if r.Variant() == SchemaLegacy {
		return r.createLegacy(ctx, job)
	}

	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO jobs (id, title, department, location, type, description, application_url, is_active) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.Title, job.Department, job.Location, job.Type, job.Description, job.ApplicationURL, true,
	).Error
	if err == nil {
		r.latch(SchemaCanonical)
		return nil
	}
	if !isUnknownColumnErr(err) {
		return err
	}
	r.latch(SchemaLegacy)
	return r.createLegacy(ctx, job)
}

func (r *JobRepository) createLegacy(ctx context.Context, job *entities.Job) error {
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO jobs (id, title, department, location, type, description, "applicationUrl") VALUES (?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.Title, job.Department, job.Location, job.Type, job.Description, job.ApplicationURL,
	).Error
}

// Update is a full replace, same policy as team members.
func (r *JobRepository) Update(ctx context.Context, job *entities.Job) error {
	if r.Variant() == SchemaLegacy {
		return r.updateLegacy(ctx, job)
	}

	err := r.db.WithContext(ctx).Exec(
		`UPDATE jobs SET title = ?, department = ?, location = ?, type = ?, description = ?, application_url = ? WHERE id = ?`,
		job.Title, job.Department, job.Location, job.Type, job.Description, job.ApplicationURL, job.ID,
	).Error
	if err == nil {
		r.latch(SchemaCanonical)
		return nil
	}
	if !isUnknownColumnErr(err) {
		return err
	}
	r.latch(SchemaLegacy)
	return r.updateLegacy(ctx, job)
}

func (r *JobRepository) updateLegacy(ctx context.Context, job *entities.Job) error {
	return r.db.WithContext(ctx).Exec(
		`UPDATE jobs SET title = ?, department = ?, location = ?, type = ?, description = ?, "applicationUrl" = ? WHERE id = ?`,
		job.Title, job.Department, job.Location, job.Type, job.Description, job.ApplicationURL, job.ID,
	).Error
}

// Delete flags the posting inactive so the row stays auditable. Legacy
// stores lack the flag and fall back to a hard delete. Unknown ids succeed
// either way.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	if r.Variant() == SchemaLegacy {
		return r.deleteLegacy(ctx, id)
	}

	err := r.db.WithContext(ctx).Exec(`UPDATE jobs SET is_active = ? WHERE id = ?`, false, id).Error
	if err == nil {
		r.latch(SchemaCanonical)
		return nil
	}
	if !isUnknownColumnErr(err) {
		return err
	}
	r.latch(SchemaLegacy)
	return r.deleteLegacy(ctx, id)
}

func (r *JobRepository) deleteLegacy(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM jobs WHERE id = ?`, id).Error
}

func jobFromRow(row map[string]interface{}) *entities.Job {
	return &entities.Job{
		ID:             rowString(row, "id"),
		Title:          rowString(row, "title"),
		Department:     rowString(row, "department"),
		Location:       rowString(row, "location"),
		Type:           rowString(row, "type"),
		Description:    rowNullString(row, "description"),
		ApplicationURL: rowNullString(row, "application_url", "applicationUrl"),
	}
}
