// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını oluşturur.
// Her service, ihtiyaç duyduğu repository interface'lerini ve diğer
// dependency'leri constructor injection ile alır.
package main

import (
	"database/sql"
	"time"

	"github.com/akinalp/docket/config"
	"github.com/akinalp/docket/pkg/ratelimit"
	"github.com/akinalp/docket/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth       services.AuthService
	Folder     services.FolderService
	Note       services.NoteService
	Attachment services.AttachmentService
	Sharing    services.SharingService
}

// RateLimiters, rate limiter instance'larını tutan container.
type RateLimiters struct {
	Login *ratelimit.LoginRateLimiter
}

// initServices, tüm service'leri ve rate limiter'ları oluşturur.
//
// FolderService ve NoteService ham *sql.DB'yi de alır — create ve reorder
// işlemleri transaction açar, repository interface'i tek başına yetmez.
func initServices(db *sql.DB, repos *Repositories, cfg *config.Config) (*Services, *RateLimiters, error) {
	authService := services.NewAuthService(
		repos.User, repos.Session,
		cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry,
	)

	folderService := services.NewFolderService(repos.Folder, db)
	noteService := services.NewNoteService(repos.Note, repos.Folder, db)
	sharingService := services.NewSharingService(repos.ShareLink, repos.Note, repos.Attachment)

	attachmentService, err := services.NewAttachmentService(
		repos.Attachment, repos.Note, cfg.Upload.Dir, cfg.Upload.MaxSize,
	)
	if err != nil {
		return nil, nil, err
	}

	svcs := &Services{
		Auth:       authService,
		Folder:     folderService,
		Note:       noteService,
		Attachment: attachmentService,
		Sharing:    sharingService,
	}

	limiters := &RateLimiters{
		Login: ratelimit.NewLoginRateLimiter(5, 2*time.Minute),
	}

	return svcs, limiters, nil
}
