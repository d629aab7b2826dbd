package http

import (
	"encoding/json"
	"net/http"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/utils"
	"github.com/benharosh/studio-cms/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listGalleryImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	images, err := h.services.GalleryService.ListImages(ctx)
	if err != nil {
		respondError(w, log, err, "error listing gallery images")
		return
	}

	h.writeJSON(w, log, images)
}

func (h *Handler) addGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var image models.GalleryImage
	if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.GalleryService.AddImage(ctx, image)
	if err != nil {
		respondError(w, log, err, "error adding gallery image")
		return
	}

	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response body")
	}
}

func (h *Handler) deleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	imageID := chi.URLParam(r, "imageID")

	if err := h.services.GalleryService.DeleteImage(ctx, imageID); err != nil {
		respondError(w, log, err, "error deleting gallery image")
		return
	}

	w.WriteHeader(http.StatusOK)
}
