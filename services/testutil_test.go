package services

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/akinalp/docket/database"
	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/repository"
	"github.com/stretchr/testify/require"
)

// newTestDB, t.TempDir() altında gerçek bir SQLite dosyası açar ve
// embedded migration'ları uygular. Driver pure Go olduğu için testlerde
// mock yerine gerçek DB kullanmak hem kolay hem daha güvenilirdir.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db.Conn
}

// newTestUser, verilen email ile bir kullanıcı satırı oluşturur.
// Şifre hash'i sahte — login gerektirmeyen testler için yeterli.
func newTestUser(t *testing.T, db *sql.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, repository.NewSQLiteUserRepo(db).Create(context.Background(), user))
	return user
}
