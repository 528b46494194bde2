package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_ProfilesWithoutStudyColumns simulates a database
// created before study_role/study_detail existed. Existing rows must survive
// and pick up the column defaults.
func TestMigrate_UpgradePath_ProfilesWithoutStudyColumns(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	// First migration only, which lacks the study columns.
	_, err = db.Exec(migrations[0])
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO profiles (id, username, level, xp, created_at, updated_at)
		VALUES ('legacy', 'old-timer', 4, 120, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var level, xp int
	var role, detail string
	err = db.QueryRow(`SELECT level, xp, study_role, study_detail FROM profiles WHERE id = 'legacy'`).
		Scan(&level, &xp, &role, &detail)
	require.NoError(t, err)
	assert.Equal(t, 4, level)
	assert.Equal(t, 120, xp)
	assert.Equal(t, "", role)
	assert.Equal(t, "", detail)

	_, err = db.Exec(`UPDATE profiles SET study_role = 'Pirate' WHERE id = 'legacy'`)
	assert.Error(t, err, "study_role check constraint should apply after upgrade")
}
