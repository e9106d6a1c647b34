package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akinalp/docket/database"
	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/pkg"
	"github.com/akinalp/docket/repository"
)

// FolderService, klasör işlemleri için interface.
type FolderService interface {
	// Create, yeni klasörü listenin başına (position 0) ekler;
	// kullanıcının mevcut klasörleri +1 kaydırılır. İki adım tek
	// transaction içindedir.
	Create(ctx context.Context, userID string, req *models.CreateFolderRequest) (*models.Folder, error)
	GetAll(ctx context.Context, userID string) ([]models.Folder, error)
	Update(ctx context.Context, userID, folderID string, req *models.UpdateFolderRequest) (*models.Folder, error)
	// Reorder, orderedIds listesindeki her klasöre listedeki index'ini
	// position olarak atar. Listedeki tüm id'ler kullanıcıya ait olmalıdır;
	// tek bir yabancı id bile tüm isteği reddettirir, hiçbir position değişmez.
	Reorder(ctx context.Context, userID string, req *models.ReorderRequest) error
	Delete(ctx context.Context, userID, folderID string) error
}

type folderService struct {
	folderRepo repository.FolderRepository
	db         *sql.DB
}

// NewFolderService, constructor.
// *sql.DB transaction açmak için gerekir — create ve reorder çok adımlıdır.
func NewFolderService(folderRepo repository.FolderRepository, db *sql.DB) FolderService {
	return &folderService{folderRepo: folderRepo, db: db}
}

func (s *folderService) Create(ctx context.Context, userID string, req *models.CreateFolderRequest) (*models.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	folder := &models.Folder{
		UserID:   userID,
		Name:     req.Name,
		Position: 0,
	}

	// Shift + insert atomik olmalı: araya giren bir listeleme yarım durumu
	// görmemeli, hata durumunda position'lar kaymış kalmamalı.
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txRepo := repository.NewSQLiteFolderRepo(tx)

		if err := txRepo.ShiftPositions(ctx, userID); err != nil {
			return err
		}
		return txRepo.Create(ctx, folder)
	})
	if err != nil {
		return nil, err
	}

	return folder, nil
}

func (s *folderService) GetAll(ctx context.Context, userID string) ([]models.Folder, error) {
	folders, err := s.folderRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if folders == nil {
		folders = []models.Folder{} // JSON'da null yerine []
	}
	return folders, nil
}

func (s *folderService) Update(ctx context.Context, userID, folderID string, req *models.UpdateFolderRequest) (*models.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	folder, err := s.getOwned(ctx, userID, folderID)
	if err != nil {
		return nil, err
	}

	if err := s.folderRepo.UpdateName(ctx, folderID, *req.Name); err != nil {
		return nil, err
	}

	folder.Name = *req.Name
	return folder, nil
}

func (s *folderService) Reorder(ctx context.Context, userID string, req *models.ReorderRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	// Önce tüm liste doğrulanır — kısmi uygulama yoktur.
	owned, err := s.folderRepo.GetIDsByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range req.OrderedIDs {
		if !owned[id] {
			return fmt.Errorf("%w: folder %s not found or not owned by user", pkg.ErrBadRequest, id)
		}
	}

	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return repository.NewSQLiteFolderRepo(tx).UpdatePositions(ctx, userID, req.OrderedIDs)
	})
}

func (s *folderService) Delete(ctx context.Context, userID, folderID string) error {
	if _, err := s.getOwned(ctx, userID, folderID); err != nil {
		return err
	}

	// Kalan klasörlerin position'ları sıkıştırılmaz — sıralama zaten
	// göreli position üzerinden yapılır, boşluklar zararsızdır.
	return s.folderRepo.Delete(ctx, folderID)
}

// getOwned, klasörü getirir ve sahiplik kontrolü yapar.
// Yabancı kullanıcının klasörü de ErrNotFound döner — klasörün varlığı
// bile sızdırılmaz.
func (s *folderService) getOwned(ctx context.Context, userID, folderID string) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder.UserID != userID {
		return nil, fmt.Errorf("%w: folder not found", pkg.ErrNotFound)
	}
	return folder, nil
}
