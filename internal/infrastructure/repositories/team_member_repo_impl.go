package repositories

import (
	"context"
	"sync/atomic"

	"gorm.io/gorm"

	"cenit-labs.backend/internal/domain/entities"
	domainerrors "cenit-labs.backend/internal/domain/errors"
)

type TeamMemberRepository struct {
	db      *gorm.DB
	variant atomic.Int32
}

func NewTeamMemberRepository(db *gorm.DB, variant SchemaVariant) *TeamMemberRepository {
	r := &TeamMemberRepository{db: db}
	r.variant.Store(int32(variant))
	return r
}

// Variant returns the currently resolved schema variant, for logging and
// tests. SchemaAuto means no layout-specific operation has run yet.
func (r *TeamMemberRepository) Variant() SchemaVariant {
	return SchemaVariant(r.variant.Load())
}

func (r *TeamMemberRepository) latch(v SchemaVariant) {
	r.variant.CompareAndSwap(int32(SchemaAuto), int32(v))
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]*entities.TeamMember, error) {
	var rows []map[string]interface{}
	var err error

	if r.Variant() == SchemaLegacy {
		err = r.db.WithContext(ctx).Raw(`SELECT * FROM team_members`).Scan(&rows).Error
	} else {
		err = r.db.WithContext(ctx).Raw(`SELECT * FROM team_members ORDER BY display_order ASC`).Scan(&rows).Error
		if err == nil {
			r.latch(SchemaCanonical)
		} else if isUnknownColumnErr(err) {
			r.latch(SchemaLegacy)
			err = r.db.WithContext(ctx).Raw(`SELECT * FROM team_members`).Scan(&rows).Error
		}
	}
	if err != nil {
		return nil, err
	}

	members := make([]*entities.TeamMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, teamMemberFromRow(row))
	}
	return members, nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id string) (*entities.TeamMember, error) {
	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Raw(`SELECT * FROM team_members WHERE id = ?`, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return teamMemberFromRow(rows[0]), nil
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	if r.Variant() == SchemaLegacy {
		return r.createLegacy(ctx, member)
	}

	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO team_members (id, name, role, bio, image_url, linkedin, group_name, display_order) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		member.ID, member.Name, member.Role, member.Bio, nullIfEmpty(member.ImageURL), member.LinkedIn, member.Group, member.DisplayOrder,
	).Error
	if err == nil {
		r.latch(SchemaCanonical)
		return nil
	}
	if !isUnknownColumnErr(err) {
		return err
	}
	r.latch(SchemaLegacy)
	return r.createLegacy(ctx, member)
}

func (r *TeamMemberRepository) createLegacy(ctx context.Context, member *entities.TeamMember) error {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO team_members (id, name, role, bio, "imageUrl", linkedin, "group") VALUES (?, ?, ?, ?, ?, ?, ?)`,
		member.ID, member.Name, member.Role, member.Bio, nullIfEmpty(member.ImageURL), member.LinkedIn, member.Group,
	).Error
	if err != nil {
		return err
	}
	// The legacy layout has no display_order column; the stored value the
	// caller will observe on the next read is the scan default.
	member.DisplayOrder = 0
	return nil
}

// Update is a full replace of every column except id and display_order.
// Optional fields the caller did not provide arrive as invalid null.Strings
// and are written as NULL, not skipped.
func (r *TeamMemberRepository) Update(ctx context.Context, member *entities.TeamMember) error {
	if r.Variant() == SchemaLegacy {
		return r.updateLegacy(ctx, member)
	}

	err := r.db.WithContext(ctx).Exec(
		`UPDATE team_members SET name = ?, role = ?, bio = ?, image_url = ?, linkedin = ?, group_name = ? WHERE id = ?`,
		member.Name, member.Role, member.Bio, nullIfEmpty(member.ImageURL), member.LinkedIn, member.Group, member.ID,
	).Error
	if err == nil {
		r.latch(SchemaCanonical)
		return nil
	}
	if !isUnknownColumnErr(err) {
		return err
	}
	r.latch(SchemaLegacy)
	return r.updateLegacy(ctx, member)
}

func (r *TeamMemberRepository) updateLegacy(ctx context.Context, member *entities.TeamMember) error {
	return r.db.WithContext(ctx).Exec(
		`UPDATE team_members SET name = ?, role = ?, bio = ?, "imageUrl" = ?, linkedin = ?, "group" = ? WHERE id = ?`,
		member.Name, member.Role, member.Bio, nullIfEmpty(member.ImageURL), member.LinkedIn, member.Group, member.ID,
	).Error
}

// Delete removes the row outright. Zero rows affected is success so that
// deletes stay idempotent.
func (r *TeamMemberRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM team_members WHERE id = ?`, id).Error
}

// Reorder applies every display_order update inside one transaction: either
// the whole batch commits or none of it does.
func (r *TeamMemberRepository) Reorder(ctx context.Context, updates []entities.OrderUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Exec(`UPDATE team_members SET display_order = ? WHERE id = ?`, u.DisplayOrder, u.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func teamMemberFromRow(row map[string]interface{}) *entities.TeamMember {
	return &entities.TeamMember{
		ID:           rowString(row, "id"),
		Name:         rowString(row, "name"),
		Role:         rowString(row, "role"),
		Bio:          rowNullString(row, "bio"),
		ImageURL:     rowString(row, "image_url", "imageUrl"),
		LinkedIn:     rowNullString(row, "linkedin"),
		Group:        rowString(row, "group_name", "group"),
		DisplayOrder: rowInt(row, "display_order", "displayOrder"),
	}
}
