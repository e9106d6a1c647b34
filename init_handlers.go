// Package main — Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Her handler, ihtiyaç duyduğu service interface'lerini constructor'dan alır.
// Handler'lar "thin"dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/akinalp/docket/config"
	"github.com/akinalp/docket/handlers"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Folder     *handlers.FolderHandler
	Note       *handlers.NoteHandler
	Attachment *handlers.AttachmentHandler
	Sharing    *handlers.SharingHandler
}

// initHandlers, tüm handler'ları dependency'leri ile oluşturur.
func initHandlers(svcs *Services, limiters *RateLimiters, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:       handlers.NewAuthHandler(svcs.Auth, limiters.Login, cfg.JWT),
		Folder:     handlers.NewFolderHandler(svcs.Folder),
		Note:       handlers.NewNoteHandler(svcs.Note),
		Attachment: handlers.NewAttachmentHandler(svcs.Attachment, cfg.Upload.MaxSize),
		Sharing:    handlers.NewSharingHandler(svcs.Sharing),
	}
}
