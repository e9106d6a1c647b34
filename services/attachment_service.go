package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/pkg"
	"github.com/akinalp/docket/repository"
	"github.com/google/uuid"
)

// allowedMimeTypes, yüklenebilecek dosya türlerinin allowlist'i.
// Sunucuya çalıştırılabilir/bilinmeyen içerik sokulmaz.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"image/webp":         true,
	"image/svg+xml":      true,
	"application/pdf":    true,
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// AttachmentService, not ekleri için interface.
// Disk I/O ve DB kaydı burada birlikte yönetilir; sahiplik her işlemde
// attachment'ın bağlı olduğu notun sahibi üzerinden doğrulanır.
type AttachmentService interface {
	Upload(ctx context.Context, userID, noteID, originalName, mimeType string, size int64, file io.Reader) (*models.Attachment, error)
	GetAllByNote(ctx context.Context, userID, noteID string) ([]models.Attachment, error)
	Delete(ctx context.Context, userID, attachmentID string) error
}

type attachmentService struct {
	attachmentRepo repository.AttachmentRepository
	noteRepo       repository.NoteRepository
	uploadDir      string
	maxSize        int64
}

// NewAttachmentService, constructor. Upload dizini yoksa oluşturulur.
func NewAttachmentService(
	attachmentRepo repository.AttachmentRepository,
	noteRepo repository.NoteRepository,
	uploadDir string,
	maxSize int64,
) (AttachmentService, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &attachmentService{
		attachmentRepo: attachmentRepo,
		noteRepo:       noteRepo,
		uploadDir:      uploadDir,
		maxSize:        maxSize,
	}, nil
}

func (s *attachmentService) Upload(ctx context.Context, userID, noteID, originalName, mimeType string, size int64, file io.Reader) (*models.Attachment, error) {
	if err := s.checkNoteOwned(ctx, userID, noteID); err != nil {
		return nil, err
	}

	if size > s.maxSize {
		return nil, fmt.Errorf("%w: file too large (max %d bytes)", pkg.ErrBadRequest, s.maxSize)
	}
	if !allowedMimeTypes[mimeType] {
		return nil, fmt.Errorf("%w: file type %s is not allowed", pkg.ErrBadRequest, mimeType)
	}

	// Diskteki ad kullanıcı girdisinden bağımsızdır — path traversal ve
	// çakışma derdi yok. Uzantı yine de korunur (Content-Type sniffing'e
	// güvenmeyen istemciler için).
	ext := strings.ToLower(filepath.Ext(originalName))
	diskName := uuid.NewString() + ext
	diskPath := filepath.Join(s.uploadDir, diskName)

	dst, err := os.Create(diskPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(file, s.maxSize+1))
	if err != nil {
		os.Remove(diskPath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}
	if written > s.maxSize {
		// Content-Length yalan söylemiş olabilir
		os.Remove(diskPath)
		return nil, fmt.Errorf("%w: file too large (max %d bytes)", pkg.ErrBadRequest, s.maxSize)
	}

	attachment := &models.Attachment{
		NoteID:       noteID,
		Filename:     diskName,
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         written,
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		os.Remove(diskPath) // DB kaydı yoksa diskte yetim dosya kalmasın
		return nil, err
	}

	return attachment, nil
}

func (s *attachmentService) GetAllByNote(ctx context.Context, userID, noteID string) ([]models.Attachment, error) {
	if err := s.checkNoteOwned(ctx, userID, noteID); err != nil {
		return nil, err
	}

	attachments, err := s.attachmentRepo.GetAllByNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if attachments == nil {
		attachments = []models.Attachment{}
	}
	return attachments, nil
}

func (s *attachmentService) Delete(ctx context.Context, userID, attachmentID string) error {
	attachment, err := s.attachmentRepo.GetByID(ctx, attachmentID)
	if err != nil {
		return err
	}

	if err := s.checkNoteOwned(ctx, userID, attachment.NoteID); err != nil {
		return err
	}

	if err := s.attachmentRepo.Delete(ctx, attachmentID); err != nil {
		return err
	}

	// Disk silme best-effort: DB kaydı gitti, yetim dosya sadece yer kaplar
	if err := os.Remove(filepath.Join(s.uploadDir, attachment.Filename)); err != nil && !os.IsNotExist(err) {
		log.Printf("[attachment] failed to remove file %s: %v", attachment.Filename, err)
	}

	return nil
}

func (s *attachmentService) checkNoteOwned(ctx context.Context, userID, noteID string) error {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note.UserID != userID {
		return fmt.Errorf("%w: note not found", pkg.ErrNotFound)
	}
	return nil
}
