package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

// Canonical layout, as bootstrapped on fresh stores. The CHECK bound gives
// reorder tests a way to poison a single update.
func createCanonicalTeamTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		bio TEXT,
		image_url TEXT,
		linkedin TEXT,
		group_name TEXT NOT NULL,
		display_order INTEGER NOT NULL DEFAULT 0 CHECK (display_order <= 9999)
	);`)
}

// Legacy layout from the first store generation.
func createLegacyTeamTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		bio TEXT,
		"imageUrl" TEXT,
		linkedin TEXT,
		"group" TEXT NOT NULL
	);`)
}

func createCanonicalJobsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE jobs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		department TEXT NOT NULL,
		location TEXT NOT NULL,
		type TEXT NOT NULL,
		description TEXT,
		application_url TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);`)
}

func createLegacyJobsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE jobs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		department TEXT NOT NULL,
		location TEXT NOT NULL,
		type TEXT NOT NULL,
		description TEXT,
		"applicationUrl" TEXT
	);`)
}

func seedCanonicalMember(t *testing.T, db *gorm.DB, id, name, role, group string, order int) {
	mustExec(t, db,
		`INSERT INTO team_members (id, name, role, bio, image_url, linkedin, group_name, display_order) VALUES (?, ?, ?, NULL, ?, NULL, ?, ?)`,
		id, name, role, "https://img.example/"+id, group, order)
}
