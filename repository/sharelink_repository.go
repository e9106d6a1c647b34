package repository

import (
	"context"

	"github.com/akinalp/docket/models"
)

// ShareLinkRepository, not paylaşım linkleri için interface.
type ShareLinkRepository interface {
	Create(ctx context.Context, link *models.ShareLink) error
	GetByNoteID(ctx context.Context, noteID string) (*models.ShareLink, error)
	GetByToken(ctx context.Context, token string) (*models.ShareLink, error)
	DeleteByNoteID(ctx context.Context, noteID string) error
}
