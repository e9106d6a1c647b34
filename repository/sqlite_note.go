package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akinalp/docket/database"
	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/pkg"
)

// sqliteNoteRepo, NoteRepository interface'inin SQLite implementasyonu.
type sqliteNoteRepo struct {
	db database.TxQuerier
}

// NewSQLiteNoteRepo, constructor.
func NewSQLiteNoteRepo(db database.TxQuerier) NoteRepository {
	return &sqliteNoteRepo{db: db}
}

func (r *sqliteNoteRepo) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (id, user_id, folder_id, title, content, color, is_favorite, position)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		note.UserID,
		note.FolderID,
		note.Title,
		note.Content,
		string(note.Color),
		boolToInt(note.IsFavorite),
		note.Position,
	).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

func (r *sqliteNoteRepo) GetByID(ctx context.Context, id string) (*models.Note, error) {
	query := `
		SELECT id, user_id, folder_id, title, content, color, is_favorite, position, created_at, updated_at
		FROM notes WHERE id = ?`

	note, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

func (r *sqliteNoteRepo) GetAllByUser(ctx context.Context, userID string, filter models.NoteFilter) ([]models.Note, error) {
	// WHERE cümlesi filtrelere göre dinamik kurulur — her koşul parametrelidir,
	// string concatenation'a kullanıcı verisi asla girmez.
	query := `
		SELECT id, user_id, folder_id, title, content, color, is_favorite, position, created_at, updated_at
		FROM notes WHERE user_id = ?`
	args := []any{userID}

	if filter.Color != "" {
		query += ` AND color = ?`
		args = append(args, filter.Color)
	}
	if filter.Favorite != nil {
		query += ` AND is_favorite = ?`
		args = append(args, boolToInt(*filter.Favorite))
	}
	if filter.Search != "" {
		// lower() iki tarafta da — SQLite LIKE sadece ASCII için case-insensitive
		query += ` AND (lower(title) LIKE ? OR lower(content) LIKE ?)`
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}
	if filter.FolderID != "" {
		query += ` AND folder_id = ?`
		args = append(args, filter.FolderID)
	}

	query += ` ORDER BY position ASC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes by user: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, *note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}

func (r *sqliteNoteRepo) GetIDsByUser(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM notes WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan note id: %w", err)
		}
		ids[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note ids: %w", err)
	}

	return ids, nil
}

func (r *sqliteNoteRepo) ShiftPositions(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notes SET position = position + 1 WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to shift note positions: %w", err)
	}
	return nil
}

func (r *sqliteNoteRepo) Update(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes
		SET folder_id = ?, title = ?, content = ?, color = ?, is_favorite = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		note.FolderID,
		note.Title,
		note.Content,
		string(note.Color),
		boolToInt(note.IsFavorite),
		note.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
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

func (r *sqliteNoteRepo) UpdatePositions(ctx context.Context, userID string, orderedIDs []string) error {
	for i, id := range orderedIDs {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE notes SET position = ? WHERE id = ? AND user_id = ?`,
			i, id, userID,
		); err != nil {
			return fmt.Errorf("failed to update position for note %s: %w", id, err)
		}
	}
	return nil
}

func (r *sqliteNoteRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
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

// scanner, *sql.Row ve *sql.Rows'un ortak Scan imzası.
type scanner interface {
	Scan(dest ...any) error
}

// scanNote, tek bir not satırını okur.
// is_favorite INTEGER olarak saklanır — bool'a elle çevrilir.
func scanNote(s scanner) (*models.Note, error) {
	note := &models.Note{}
	var fav int

	err := s.Scan(
		&note.ID, &note.UserID, &note.FolderID, &note.Title, &note.Content,
		&note.Color, &fav, &note.Position, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	note.IsFavorite = fav == 1
	return note, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
