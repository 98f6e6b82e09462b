package repositories

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectVariant_Canonical(t *testing.T) {
	db := newTestDB(t)
	createCanonicalTeamTable(t, db)

	v, err := DetectVariant(db)
	require.NoError(t, err)
	assert.Equal(t, SchemaCanonical, v)
}

func TestDetectVariant_Legacy(t *testing.T) {
	db := newTestDB(t)
	createLegacyTeamTable(t, db)

	v, err := DetectVariant(db)
	require.NoError(t, err)
	assert.Equal(t, SchemaLegacy, v)
}

func TestDetectVariant_StoreError(t *testing.T) {
	db := newTestDB(t)
	// no table at all: not a column-drift situation

	v, err := DetectVariant(db)
	require.Error(t, err)
	assert.Equal(t, SchemaAuto, v)
}

func TestIsUnknownColumnErr(t *testing.T) {
	assert.False(t, isUnknownColumnErr(nil))
	assert.True(t, isUnknownColumnErr(errors.New("no such column: display_order")))
	assert.True(t, isUnknownColumnErr(errors.New("table team_members has no column named image_url")))
	assert.True(t, isUnknownColumnErr(errors.New(`ERROR: column "display_order" does not exist (SQLSTATE 42703)`)))
	assert.True(t, isUnknownColumnErr(&pgconn.PgError{Code: "42703"}))

	assert.False(t, isUnknownColumnErr(errors.New("no such table: team_members")))
	assert.False(t, isUnknownColumnErr(errors.New("connection refused")))
	assert.False(t, isUnknownColumnErr(&pgconn.PgError{Code: "23505"}))
}

func TestSchemaVariant_String(t *testing.T) {
	assert.Equal(t, "auto", SchemaAuto.String())
	assert.Equal(t, "canonical", SchemaCanonical.String())
	assert.Equal(t, "legacy", SchemaLegacy.String())
}
