package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/pkg"
	"github.com/akinalp/docket/pkg/cache"
	"github.com/akinalp/docket/repository"
)

// shareTokenBytes — 24 byte → 48 karakterlik hex token.
const shareTokenBytes = 24

// sharedNoteCacheTTL, public endpoint'in token lookup cache süresi.
// Kısa tutulur: link viral olduğunda DB'yi korur ama güncellemeler
// en geç 30 saniyede görünür olur. Revoke TTL beklemez (Delete).
const sharedNoteCacheTTL = 30 * time.Second

// SharingService, not paylaşım linkleri için interface.
type SharingService interface {
	// CreateShareLink idempotenttir: not için zaten geçerli bir link varsa
	// yenisi üretilmez, mevcut link döner.
	CreateShareLink(ctx context.Context, userID, noteID string, expiresAt *time.Time) (*models.ShareLink, error)
	GetShareLink(ctx context.Context, userID, noteID string) (*models.ShareLink, error)
	RevokeShareLink(ctx context.Context, userID, noteID string) error
	// GetSharedNote public'tir — authentication yoktur, token tek anahtardır.
	// Süresi dolmuş link ErrGone döner (410), yok olan link ErrNotFound (404).
	GetSharedNote(ctx context.Context, token string) (*models.SharedNote, error)
}

type sharingService struct {
	shareLinkRepo  repository.ShareLinkRepository
	noteRepo       repository.NoteRepository
	attachmentRepo repository.AttachmentRepository
	sharedCache    *cache.TTLCache[string, *models.SharedNote]
}

// NewSharingService, constructor.
func NewSharingService(
	shareLinkRepo repository.ShareLinkRepository,
	noteRepo repository.NoteRepository,
	attachmentRepo repository.AttachmentRepository,
) SharingService {
	return &sharingService{
		shareLinkRepo:  shareLinkRepo,
		noteRepo:       noteRepo,
		attachmentRepo: attachmentRepo,
		sharedCache:    cache.New[string, *models.SharedNote](sharedNoteCacheTTL, time.Minute),
	}
}

func (s *sharingService) CreateShareLink(ctx context.Context, userID, noteID string, expiresAt *time.Time) (*models.ShareLink, error) {
	if err := s.checkNoteOwned(ctx, userID, noteID); err != nil {
		return nil, err
	}

	existing, err := s.shareLinkRepo.GetByNoteID(ctx, noteID)
	if err == nil {
		if existing.ExpiresAt == nil || time.Now().Before(*existing.ExpiresAt) {
			return existing, nil
		}
		// Süresi dolmuş link yenisiyle değiştirilir
		if delErr := s.shareLinkRepo.DeleteByNoteID(ctx, noteID); delErr != nil {
			return nil, delErr
		}
		s.sharedCache.Delete(existing.Token)
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return nil, err
	}

	tokenBytes := make([]byte, shareTokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, fmt.Errorf("failed to generate share token: %w", err)
	}

	link := &models.ShareLink{
		NoteID:    noteID,
		Token:     hex.EncodeToString(tokenBytes),
		ExpiresAt: expiresAt,
	}

	if err := s.shareLinkRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *sharingService) GetShareLink(ctx context.Context, userID, noteID string) (*models.ShareLink, error) {
	if err := s.checkNoteOwned(ctx, userID, noteID); err != nil {
		return nil, err
	}
	return s.shareLinkRepo.GetByNoteID(ctx, noteID)
}

func (s *sharingService) RevokeShareLink(ctx context.Context, userID, noteID string) error {
	if err := s.checkNoteOwned(ctx, userID, noteID); err != nil {
		return err
	}

	link, err := s.shareLinkRepo.GetByNoteID(ctx, noteID)
	if err != nil {
		return err
	}

	if err := s.shareLinkRepo.DeleteByNoteID(ctx, noteID); err != nil {
		return err
	}

	// Cache'teki kopya TTL'i beklemeden düşürülür — revoke anında etkilidir
	s.sharedCache.Delete(link.Token)
	return nil
}

func (s *sharingService) GetSharedNote(ctx context.Context, token string) (*models.SharedNote, error) {
	if cached, ok := s.sharedCache.Get(token); ok {
		return cached, nil
	}

	link, err := s.shareLinkRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if link.ExpiresAt != nil && time.Now().After(*link.ExpiresAt) {
		return nil, fmt.Errorf("%w: share link expired", pkg.ErrGone)
	}

	note, err := s.noteRepo.GetByID(ctx, link.NoteID)
	if err != nil {
		return nil, err
	}

	attachments, err := s.attachmentRepo.GetAllByNote(ctx, link.NoteID)
	if err != nil {
		return nil, err
	}
	if attachments == nil {
		attachments = []models.Attachment{}
	}

	shared := &models.SharedNote{
		Note:        *note,
		Attachments: attachments,
	}

	s.sharedCache.Set(token, shared)
	return shared, nil
}

func (s *sharingService) checkNoteOwned(ctx context.Context, userID, noteID string) error {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note.UserID != userID {
		return fmt.Errorf("%w: note not found", pkg.ErrNotFound)
	}
	return nil
}
