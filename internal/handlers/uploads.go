package handlers

import (
	"net/http"

	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// 10 MB upload cap
const maxUploadSize = 10 << 20

// UploadHandler handles image uploads for the menu
type UploadHandler struct {
	imageService *services.ImageService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(imageService *services.ImageService) *UploadHandler {
	return &UploadHandler{imageService: imageService}
}

// Upload handles POST /api/admin/uploads. Expects a multipart form with
// an "image" field and returns the stored original plus variants.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "image field is required"})
		return
	}
	defer file.Close()

	result, err := h.imageService.UploadImage(r.Context(), file, header.Filename)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// Delete handles DELETE /api/admin/uploads/{key}. The key is the
// prefix returned at upload time.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		respondError(w, models.ErrInvalidInput)
		return
	}

	if err := h.imageService.DeleteImage(r.Context(), key); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
