package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/docket/database"
	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/pkg"
	"github.com/akinalp/docket/repository"
)

// NoteService, not işlemleri için interface.
// Position semantiği FolderService ile aynıdır: create başa ekler,
// reorder index'leri yazar, delete boşluk bırakır.
type NoteService interface {
	Create(ctx context.Context, userID string, req *models.CreateNoteRequest) (*models.Note, error)
	GetAll(ctx context.Context, userID string, filter models.NoteFilter) ([]models.Note, error)
	GetByID(ctx context.Context, userID, noteID string) (*models.Note, error)
	Update(ctx context.Context, userID, noteID string, req *models.UpdateNoteRequest) (*models.Note, error)
	Reorder(ctx context.Context, userID string, req *models.ReorderRequest) error
	Delete(ctx context.Context, userID, noteID string) error
}

type noteService struct {
	noteRepo   repository.NoteRepository
	folderRepo repository.FolderRepository
	db         *sql.DB
}

// NewNoteService, constructor.
func NewNoteService(noteRepo repository.NoteRepository, folderRepo repository.FolderRepository, db *sql.DB) NoteService {
	return &noteService{noteRepo: noteRepo, folderRepo: folderRepo, db: db}
}

func (s *noteService) Create(ctx context.Context, userID string, req *models.CreateNoteRequest) (*models.Note, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	// Hedef klasör varsa kullanıcıya ait olmalı
	if req.FolderID != nil && *req.FolderID != "" {
		if err := s.checkFolderOwned(ctx, userID, *req.FolderID); err != nil {
			return nil, err
		}
	} else {
		req.FolderID = nil
	}

	note := &models.Note{
		UserID:     userID,
		FolderID:   req.FolderID,
		Title:      req.Title,
		Content:    req.Content,
		Color:      models.NoteColor(req.Color),
		IsFavorite: req.IsFavorite,
		Position:   0,
	}

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txRepo := repository.NewSQLiteNoteRepo(tx)

		if err := txRepo.ShiftPositions(ctx, userID); err != nil {
			return err
		}
		return txRepo.Create(ctx, note)
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (s *noteService) GetAll(ctx context.Context, userID string, filter models.NoteFilter) ([]models.Note, error) {
	notes, err := s.noteRepo.GetAllByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (s *noteService) GetByID(ctx context.Context, userID, noteID string) (*models.Note, error) {
	return s.getOwned(ctx, userID, noteID)
}

func (s *noteService) Update(ctx context.Context, userID, noteID string, req *models.UpdateNoteRequest) (*models.Note, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	note, err := s.getOwned(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	// Partial update: sadece gönderilen alanlar değişir
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Color != nil {
		note.Color = models.NoteColor(*req.Color)
	}
	if req.IsFavorite != nil {
		note.IsFavorite = *req.IsFavorite
	}
	if req.FolderID != nil {
		if *req.FolderID == "" {
			// Boş string → notu klasöründen çıkar
			note.FolderID = nil
		} else {
			if err := s.checkFolderOwned(ctx, userID, *req.FolderID); err != nil {
				return nil, err
			}
			note.FolderID = req.FolderID
		}
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	// updated_at DB'de CURRENT_TIMESTAMP ile yazıldı — güncel halini çek
	return s.noteRepo.GetByID(ctx, noteID)
}

func (s *noteService) Reorder(ctx context.Context, userID string, req *models.ReorderRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	owned, err := s.noteRepo.GetIDsByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range req.OrderedIDs {
		if !owned[id] {
			return fmt.Errorf("%w: note %s not found or not owned by user", pkg.ErrBadRequest, id)
		}
	}

	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return repository.NewSQLiteNoteRepo(tx).UpdatePositions(ctx, userID, req.OrderedIDs)
	})
}

func (s *noteService) Delete(ctx context.Context, userID, noteID string) error {
	if _, err := s.getOwned(ctx, userID, noteID); err != nil {
		return err
	}

	// Attachment ve share_link satırları FK cascade ile gider;
	// diskteki attachment dosyaları AttachmentService tarafında temizlenir.
	return s.noteRepo.Delete(ctx, noteID)
}

func (s *noteService) getOwned(ctx context.Context, userID, noteID string) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, fmt.Errorf("%w: note not found", pkg.ErrNotFound)
	}
	return note, nil
}

func (s *noteService) checkFolderOwned(ctx context.Context, userID, folderID string) error {
	folder, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return fmt.Errorf("%w: folder not found", pkg.ErrBadRequest)
		}
		return err
	}
	if folder.UserID != userID {
		return fmt.Errorf("%w: folder not found", pkg.ErrBadRequest)
	}
	return nil
}
