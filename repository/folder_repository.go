package repository

import (
	"context"

	"github.com/akinalp/docket/models"
)

// FolderRepository, klasör kayıtları için interface.
//
// ShiftPositions + Create ve UpdatePositions çağrıları atomik olmalıdır —
// service katmanı bunları database.WithTx içinde transaction-bound repo
// instance'ları ile çalıştırır (constructor TxQuerier aldığı için
// aynı implementasyon *sql.Tx üzerinde de çalışır).
type FolderRepository interface {
	Create(ctx context.Context, folder *models.Folder) error
	GetByID(ctx context.Context, id string) (*models.Folder, error)
	GetAllByUser(ctx context.Context, userID string) ([]models.Folder, error)
	// GetIDsByUser, kullanıcının tüm klasör id'lerini set olarak döner —
	// reorder input validation'ı için.
	GetIDsByUser(ctx context.Context, userID string) (map[string]bool, error)
	// ShiftPositions, kullanıcının tüm klasörlerinin position'ını +1 kaydırır.
	ShiftPositions(ctx context.Context, userID string) error
	UpdateName(ctx context.Context, id, name string) error
	// UpdatePositions, her id'ye listedeki index'ini position olarak atar.
	// Sadece userID'ye ait satırlar güncellenir.
	UpdatePositions(ctx context.Context, userID string, orderedIDs []string) error
	Delete(ctx context.Context, id string) error
}
