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

// sqliteFolderRepo, FolderRepository interface'inin SQLite implementasyonu.
type sqliteFolderRepo struct {
	db database.TxQuerier
}

// NewSQLiteFolderRepo, constructor.
func NewSQLiteFolderRepo(db database.TxQuerier) FolderRepository {
	return &sqliteFolderRepo{db: db}
}

func (r *sqliteFolderRepo) Create(ctx context.Context, folder *models.Folder) error {
	query := `
		INSERT INTO folders (id, user_id, name, position)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		folder.UserID,
		folder.Name,
		folder.Position,
	).Scan(&folder.ID, &folder.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	return nil
}

func (r *sqliteFolderRepo) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	query := `SELECT id, user_id, name, position, created_at FROM folders WHERE id = ?`

	folder := &models.Folder{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&folder.ID, &folder.UserID, &folder.Name, &folder.Position, &folder.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get folder by id: %w", err)
	}

	return folder, nil
}

func (r *sqliteFolderRepo) GetAllByUser(ctx context.Context, userID string) ([]models.Folder, error) {
	// created_at DESC tie-break: aynı position'a düşen kayıtlar (silme
	// sonrası boşluklar, eski veriler) için deterministik sıra sağlar.
	query := `
		SELECT id, user_id, name, position, created_at
		FROM folders WHERE user_id = ?
		ORDER BY position ASC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get folders by user: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var f models.Folder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Position, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan folder row: %w", err)
		}
		folders = append(folders, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating folder rows: %w", err)
	}

	return folders, nil
}

func (r *sqliteFolderRepo) GetIDsByUser(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM folders WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get folder ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan folder id: %w", err)
		}
		ids[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating folder ids: %w", err)
	}

	return ids, nil
}

func (r *sqliteFolderRepo) ShiftPositions(ctx context.Context, userID string) error {
	// Tek bulk update — owner filtreli, satır satır değil.
	_, err := r.db.ExecContext(ctx,
		`UPDATE folders SET position = position + 1 WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to shift folder positions: %w", err)
	}
	return nil
}

func (r *sqliteFolderRepo) UpdateName(ctx context.Context, id, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE folders SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to update folder: %w", err)
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

func (r *sqliteFolderRepo) UpdatePositions(ctx context.Context, userID string, orderedIDs []string) error {
	// position = listedeki zero-based index. user_id filtresi, validation'dan
	// kaçan yabancı bir id'nin başka kullanıcının verisini ezmesini engeller.
	for i, id := range orderedIDs {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE folders SET position = ? WHERE id = ? AND user_id = ?`,
			i, id, userID,
		); err != nil {
			return fmt.Errorf("failed to update position for folder %s: %w", id, err)
		}
	}
	return nil
}

func (r *sqliteFolderRepo) Delete(ctx context.Context, id string) error {
	// Klasör silindiğinde notların folder_id'si NULL olur (ON DELETE SET NULL).
	result, err := r.db.ExecContext(ctx, `DELETE FROM folders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
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
