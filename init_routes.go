// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// auth helper'ı JWT doğrulama middleware'ını sarar.
package main

import (
	"net/http"
	"strings"

	"github.com/akinalp/docket/config"
	"github.com/akinalp/docket/middleware"
	"github.com/akinalp/docket/repository"
	"github.com/akinalp/docket/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: Literal path'ler parametrik path'lerden ÖNCE tanımlanmalı.
// Örnek: "/api/notes/reorder" → "/api/notes/{id}" öncesinde,
// yoksa Go router "reorder" kelimesini bir note id olarak yorumlar.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
	uploadCfg config.UploadConfig,
) {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService, userRepo)

	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}

	// Auth — public endpoint'ler (access token gerekmez)
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	// Auth — protected
	mux.Handle("GET /api/auth/me", auth(h.Auth.Me))
	mux.Handle("PATCH /api/auth/profile", auth(h.Auth.UpdateProfile))
	mux.Handle("PATCH /api/auth/password", auth(h.Auth.ChangePassword))

	// Folders
	mux.Handle("GET /api/folders", auth(h.Folder.GetAll))
	mux.Handle("POST /api/folders", auth(h.Folder.Create))
	mux.Handle("PUT /api/folders/reorder", auth(h.Folder.Reorder))
	mux.Handle("PATCH /api/folders/{id}", auth(h.Folder.Update))
	mux.Handle("DELETE /api/folders/{id}", auth(h.Folder.Delete))

	// Notes
	mux.Handle("GET /api/notes", auth(h.Note.GetAll))
	mux.Handle("POST /api/notes", auth(h.Note.Create))
	mux.Handle("PUT /api/notes/reorder", auth(h.Note.Reorder))
	mux.Handle("GET /api/notes/{id}", auth(h.Note.GetByID))
	mux.Handle("PATCH /api/notes/{id}", auth(h.Note.Update))
	mux.Handle("DELETE /api/notes/{id}", auth(h.Note.Delete))

	// Attachments
	mux.Handle("POST /api/notes/{id}/attachments", auth(h.Attachment.Upload))
	mux.Handle("GET /api/notes/{id}/attachments", auth(h.Attachment.GetAllByNote))
	mux.Handle("DELETE /api/attachments/{id}", auth(h.Attachment.Delete))

	// Sharing — yönetim endpoint'leri auth ister, okuma public'tir
	mux.Handle("POST /api/notes/{id}/share", auth(h.Sharing.CreateShareLink))
	mux.Handle("GET /api/notes/{id}/share", auth(h.Sharing.GetShareLink))
	mux.Handle("DELETE /api/notes/{id}/share", auth(h.Sharing.RevokeShareLink))
	mux.HandleFunc("GET /api/shared/{token}", h.Sharing.GetSharedNote)

	// Static file serving — yüklenen dosyalara erişim
	//
	// http.StripPrefix: URL'den "/api/uploads/" kısmını çıkarır.
	// http.FileServer: Kalan path'i upload dizininde dosya olarak arar.
	// Diskteki isimler random üretildiği için tahmin edilemez; yine de
	// subdirectory içeren path'ler reddedilir.
	uploadsHandler := http.StripPrefix("/api/uploads/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/") || strings.Contains(r.URL.Path, "\\") {
			http.NotFound(w, r)
			return
		}
		http.FileServer(http.Dir(uploadCfg.Dir)).ServeHTTP(w, r)
	}))
	mux.Handle("GET /api/uploads/", uploadsHandler)
}
