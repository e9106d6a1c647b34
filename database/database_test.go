package database

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsApplyOnce(t *testing.T) {
	migrationsFS, err := fs.Sub(EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := New(dbPath, migrationsFS)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.Conn.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Greater(t, count, 0)
	require.NoError(t, db.Close())

	// Aynı dosyaya ikinci açılış migration'ları tekrar UYGULAMAZ
	db2, err := New(dbPath, migrationsFS)
	require.NoError(t, err)
	defer db2.Close()

	var count2 int
	require.NoError(t, db2.Conn.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations").Scan(&count2))
	assert.Equal(t, count, count2)
}

func TestForeignKeysEnabled(t *testing.T) {
	migrationsFS, err := fs.Sub(EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.Conn.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{
			name: "iki statement",
			sql:  "CREATE TABLE a (id TEXT); CREATE TABLE b (id TEXT);",
			want: []string{"CREATE TABLE a (id TEXT)", "CREATE TABLE b (id TEXT)"},
		},
		{
			name: "string literal içindeki noktalı virgül bölmez",
			sql:  "INSERT INTO t VALUES ('a;b'); SELECT 1;",
			want: []string{"INSERT INTO t VALUES ('a;b')", "SELECT 1"},
		},
		{
			name: "escape edilmiş tırnak",
			sql:  "INSERT INTO t VALUES ('it''s;fine'); SELECT 1;",
			want: []string{"INSERT INTO t VALUES ('it''s;fine')", "SELECT 1"},
		},
		{
			name: "son statement noktalı virgülsüz",
			sql:  "SELECT 1; SELECT 2",
			want: []string{"SELECT 1", "SELECT 2"},
		},
		{
			name: "boş parçalar atlanır",
			sql:  ";;SELECT 1;;",
			want: []string{"SELECT 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitStatements(tt.sql))
		})
	}
}
