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

// sqliteAttachmentRepo, AttachmentRepository interface'inin SQLite implementasyonu.
type sqliteAttachmentRepo struct {
	db database.TxQuerier
}

// NewSQLiteAttachmentRepo, constructor.
func NewSQLiteAttachmentRepo(db database.TxQuerier) AttachmentRepository {
	return &sqliteAttachmentRepo{db: db}
}

func (r *sqliteAttachmentRepo) Create(ctx context.Context, attachment *models.Attachment) error {
	query := `
		INSERT INTO attachments (id, note_id, filename, original_name, mime_type, size)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		attachment.NoteID,
		attachment.Filename,
		attachment.OriginalName,
		attachment.MimeType,
		attachment.Size,
	).Scan(&attachment.ID, &attachment.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	attachment.URL = "/api/uploads/" + attachment.Filename
	return nil
}

func (r *sqliteAttachmentRepo) GetByID(ctx context.Context, id string) (*models.Attachment, error) {
	query := `
		SELECT id, note_id, filename, original_name, mime_type, size, created_at
		FROM attachments WHERE id = ?`

	att := &models.Attachment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&att.ID, &att.NoteID, &att.Filename, &att.OriginalName,
		&att.MimeType, &att.Size, &att.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment by id: %w", err)
	}

	att.URL = "/api/uploads/" + att.Filename
	return att, nil
}

func (r *sqliteAttachmentRepo) GetAllByNote(ctx context.Context, noteID string) ([]models.Attachment, error) {
	query := `
		SELECT id, note_id, filename, original_name, mime_type, size, created_at
		FROM attachments WHERE note_id = ?
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attachments by note: %w", err)
	}
	defer rows.Close()

	var attachments []models.Attachment
	for rows.Next() {
		var att models.Attachment
		if err := rows.Scan(
			&att.ID, &att.NoteID, &att.Filename, &att.OriginalName,
			&att.MimeType, &att.Size, &att.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attachment row: %w", err)
		}
		att.URL = "/api/uploads/" + att.Filename
		attachments = append(attachments, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attachment rows: %w", err)
	}

	return attachments, nil
}

func (r *sqliteAttachmentRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
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
