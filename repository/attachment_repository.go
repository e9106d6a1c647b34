package repository

import (
	"context"

	"github.com/akinalp/docket/models"
)

// AttachmentRepository, not ekleri için interface.
// Sahiplik kontrolü burada değil, service katmanındadır — attachment'ın
// bağlı olduğu notun sahibi üzerinden doğrulanır.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	GetByID(ctx context.Context, id string) (*models.Attachment, error)
	GetAllByNote(ctx context.Context, noteID string) ([]models.Attachment, error)
	Delete(ctx context.Context, id string) error
}
