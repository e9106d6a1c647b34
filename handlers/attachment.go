package handlers

import (
	"net/http"

	"github.com/akinalp/docket/pkg"
	"github.com/akinalp/docket/services"
)

// AttachmentHandler, not eki endpoint'leri.
type AttachmentHandler struct {
	attachmentService services.AttachmentService
	maxSize           int64
}

// NewAttachmentHandler, constructor.
func NewAttachmentHandler(attachmentService services.AttachmentService, maxSize int64) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
		maxSize:           maxSize,
	}
}

// Upload, POST /api/notes/{id}/attachments
// multipart/form-data, dosya alanının adı "file".
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	// Body sınırı: multipart overhead payı için maxSize üzerine küçük marj
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+1024*1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.Upload(
		r.Context(),
		user.ID,
		r.PathValue("id"),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, attachment)
}

// GetAllByNote, GET /api/notes/{id}/attachments
func (h *AttachmentHandler) GetAllByNote(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	attachments, err := h.attachmentService.GetAllByNote(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, attachments)
}

// Delete, DELETE /api/attachments/{id}
func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.attachmentService.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "attachment deleted"})
}
