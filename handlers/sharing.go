package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/akinalp/docket/pkg"
	"github.com/akinalp/docket/services"
)

// SharingHandler, not paylaşım endpoint'leri.
// GetSharedNote dışındaki tüm endpoint'ler auth gerektirir.
type SharingHandler struct {
	sharingService services.SharingService
}

// NewSharingHandler, constructor.
func NewSharingHandler(sharingService services.SharingService) *SharingHandler {
	return &SharingHandler{sharingService: sharingService}
}

// createShareLinkRequest, POST body'si. expiresInDays gönderilmezse link süresizdir.
type createShareLinkRequest struct {
	ExpiresInDays *int `json:"expiresInDays"`
}

// CreateShareLink, POST /api/notes/{id}/share
// Not için zaten link varsa mevcut link döner (idempotent).
func (h *SharingHandler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	// Body opsiyoneldir — boş body süresiz link demektir
	var req createShareLinkRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	var expiresAt *time.Time
	if req.ExpiresInDays != nil {
		if *req.ExpiresInDays <= 0 {
			pkg.ErrorWithMessage(w, http.StatusBadRequest, "expiresInDays must be positive")
			return
		}
		t := time.Now().Add(time.Duration(*req.ExpiresInDays) * 24 * time.Hour)
		expiresAt = &t
	}

	link, err := h.sharingService.CreateShareLink(r.Context(), user.ID, r.PathValue("id"), expiresAt)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, link)
}

// GetShareLink, GET /api/notes/{id}/share
func (h *SharingHandler) GetShareLink(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	link, err := h.sharingService.GetShareLink(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, link)
}

// RevokeShareLink, DELETE /api/notes/{id}/share
func (h *SharingHandler) RevokeShareLink(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.sharingService.RevokeShareLink(r.Context(), user.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "share link revoked"})
}

// GetSharedNote, GET /api/shared/{token} — PUBLIC, auth yok.
// Token tek anahtardır; süresi dolmuş link 410 Gone döner.
func (h *SharingHandler) GetSharedNote(w http.ResponseWriter, r *http.Request) {
	shared, err := h.sharingService.GetSharedNote(r.Context(), r.PathValue("token"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, shared)
}
