package handler

import (
	"encoding/json"
	"net/http"

	"wax/services/media/service"

	"github.com/go-chi/chi/v5"
)

type MediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// 멀티파트 업로드
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	prefix := chi.URLParam(r, "prefix")

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.mediaService.Upload(r.Context(), prefix, header.Filename, file, header.Size, contentType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

// prefix별 목록
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	prefix := chi.URLParam(r, "prefix")

	urls, err := h.mediaService.List(r.Context(), prefix)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(urls)
}
