package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SchemaVariant identifies which column layout the backing store uses.
// Provisioned stores predate the snake_case rename, so the adapter has to
// work against both layouts without surfacing the difference to callers.
type SchemaVariant int32

const (
	// SchemaAuto means the variant has not been resolved yet; the first
	// operation that hits a layout-specific column resolves and latches it.
	SchemaAuto SchemaVariant = iota
	// SchemaCanonical is the current layout: image_url, group_name,
	// display_order, application_url, is_active.
	SchemaCanonical
	// SchemaLegacy is the original layout: "imageUrl", quoted "group",
	// "applicationUrl", no display_order and no is_active.
	SchemaLegacy
)

func (v SchemaVariant) String() string {
	switch v {
	case SchemaCanonical:
		return "canonical"
	case SchemaLegacy:
		return "legacy"
	default:
		return "auto"
	}
}

// DetectVariant probes the store once at startup so the per-call fallback
// path does not run on every write. A store that is unreachable at boot
// leaves the variant at SchemaAuto and the repositories resolve it lazily.
func DetectVariant(db *gorm.DB) (SchemaVariant, error) {
	var order int
	err := db.Raw(`SELECT display_order FROM team_members LIMIT 1`).Scan(&order).Error
	if err == nil {
		return SchemaCanonical, nil
	}
	if isUnknownColumnErr(err) {
		return SchemaLegacy, nil
	}
	return SchemaAuto, err
}

// isUnknownColumnErr reports whether err is specifically an unknown-column
// failure. The match is deliberately narrow: only this error class triggers
// the legacy-layout fallback, everything else propagates so genuine store
// failures are never masked as schema drift.
func isUnknownColumnErr(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42703" // undefined_column
	}
	msg := err.Error()
	return strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "has no column named") ||
		strings.Contains(msg, "SQLSTATE 42703")
}
