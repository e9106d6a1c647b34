package repository

import (
	"context"

	"github.com/akinalp/docket/models"
)

// SessionRepository, refresh token oturumları için interface.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByRefreshToken(ctx context.Context, token string) (*models.Session, error)
	// DeleteByToken, token'a ait satırları siler ve silinen satır sayısını döner.
	// Rotation bu sayıyı fencing olarak kullanır: 0 satır silindiyse token'ı
	// eşzamanlı başka bir refresh çoktan tüketmiştir.
	DeleteByToken(ctx context.Context, token string) (int64, error)
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) error
}
