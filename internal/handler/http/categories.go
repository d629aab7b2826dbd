package http

import (
	"encoding/json"
	"net/http"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	categories, err := h.services.CategoryService.ListCategories(ctx)
	if err != nil {
		respondError(w, log, err, "error listing categories")
		return
	}

	h.writeJSON(w, log, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CategoryService.CreateCategory(ctx, category)
	if err != nil {
		respondError(w, log, err, "error creating category")
		return
	}

	h.writeJSON(w, log, created)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// The path is authoritative for which record is updated.
	category.ID = chi.URLParam(r, "categoryID")

	if err := h.services.CategoryService.UpdateCategory(ctx, category); err != nil {
		respondError(w, log, err, "error updating category")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	categoryID := chi.URLParam(r, "categoryID")

	if err := h.services.CategoryService.DeleteCategory(ctx, categoryID); err != nil {
		respondError(w, log, err, "error deleting category")
		return
	}

	w.WriteHeader(http.StatusOK)
}
