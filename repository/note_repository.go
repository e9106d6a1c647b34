package repository

import (
	"context"

	"github.com/akinalp/docket/models"
)

// NoteRepository, not kayıtları için interface.
// Position semantiği FolderRepository ile aynıdır (bkz. folder_repository.go).
type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id string) (*models.Note, error)
	GetAllByUser(ctx context.Context, userID string, filter models.NoteFilter) ([]models.Note, error)
	GetIDsByUser(ctx context.Context, userID string) (map[string]bool, error)
	ShiftPositions(ctx context.Context, userID string) error
	// Update, notun mutable alanlarını (title, content, color, is_favorite,
	// folder_id) yazar ve updated_at'i tazeler.
	Update(ctx context.Context, note *models.Note) error
	UpdatePositions(ctx context.Context, userID string, orderedIDs []string) error
	Delete(ctx context.Context, id string) error
}
