package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/docket/database"
	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/pkg"
)

// sqliteShareLinkRepo, ShareLinkRepository interface'inin SQLite implementasyonu.
type sqliteShareLinkRepo struct {
	db database.TxQuerier
}

// NewSQLiteShareLinkRepo, constructor.
func NewSQLiteShareLinkRepo(db database.TxQuerier) ShareLinkRepository {
	return &sqliteShareLinkRepo{db: db}
}

func (r *sqliteShareLinkRepo) Create(ctx context.Context, link *models.ShareLink) error {
	query := `
		INSERT INTO share_links (id, note_id, token, expires_at)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		link.NoteID,
		link.Token,
		link.ExpiresAt,
	).Scan(&link.ID, &link.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create share link: %w", err)
	}

	return nil
}

func (r *sqliteShareLinkRepo) GetByNoteID(ctx context.Context, noteID string) (*models.ShareLink, error) {
	query := `SELECT id, note_id, token, expires_at, created_at FROM share_links WHERE note_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, noteID))
}

func (r *sqliteShareLinkRepo) GetByToken(ctx context.Context, token string) (*models.ShareLink, error) {
	query := `SELECT id, note_id, token, expires_at, created_at FROM share_links WHERE token = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, token))
}

func (r *sqliteShareLinkRepo) DeleteByNoteID(ctx context.Context, noteID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM share_links WHERE note_id = ?`, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete share link: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteShareLinkRepo) scanOne(row *sql.Row) (*models.ShareLink, error) {
	link := &models.ShareLink{}
	err := row.Scan(&link.ID, &link.NoteID, &link.Token, &link.ExpiresAt, &link.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get share link: %w", err)
	}

	return link, nil
}
