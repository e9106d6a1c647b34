// Package repository, veri erişim katmanını barındırır.
//
// Her entity için iki dosya vardır: interface (x_repository.go) ve
// SQLite implementasyonu (sqlite_x.go). Service katmanı sadece
// interface'e bağımlıdır — testlerde in-memory DB ile aynı implementasyon,
// gerekirse mock kullanılabilir.
package repository

import (
	"context"

	"github.com/akinalp/docket/models"
)

// UserRepository, kullanıcı kayıtları için interface.
type UserRepository interface {
	// Create, yeni kullanıcı ekler. Email zaten kayıtlıysa pkg.ErrAlreadyExists döner.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateName(ctx context.Context, id string, name *string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
