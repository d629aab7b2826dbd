package http

import (
	"encoding/json"
	"net/http"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pageID := chi.URLParam(r, "pageID")

	document, err := h.services.PageService.GetPage(ctx, pageID)
	if err != nil {
		respondError(w, log, err, "error getting page document")
		return
	}

	h.writeJSON(w, log, document)
}

func (h *Handler) getPageView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pageID := chi.URLParam(r, "pageID")

	pageView, err := h.services.PageService.GetPageView(ctx, pageID)
	if err != nil {
		respondError(w, log, err, "error getting page view")
		return
	}

	h.writeJSON(w, log, pageView)
}

func (h *Handler) savePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pageID := chi.URLParam(r, "pageID")

	var document models.PageDocument
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.PageService.SavePage(ctx, pageID, document.ContentBlocks)
	if err != nil {
		respondError(w, log, err, "error saving page document")
		return
	}

	h.writeJSON(w, log, saved)
}

func (h *Handler) resetPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pageID := chi.URLParam(r, "pageID")

	document, err := h.services.PageService.ResetPage(ctx, pageID)
	if err != nil {
		respondError(w, log, err, "error resetting page document")
		return
	}

	h.writeJSON(w, log, document)
}

// blockContentRequest is the body of a block content update. The declared
// type selects the concrete content shape the payload decodes into.
type blockContentRequest struct {
	Type    models.BlockType `json:"type"`
	Content json.RawMessage  `json:"content"`
}

func (h *Handler) updateBlockContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pageID := chi.URLParam(r, "pageID")
	blockID := chi.URLParam(r, "blockID")

	var request blockContentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	blockContent, err := models.DecodeBlockContent(request.Type, request.Content)
	if err != nil {
		log.Err(err).Msg("error decoding block content payload")
		http.Error(w, "Invalid block content was passed", http.StatusBadRequest)
		return
	}

	document, err := h.services.PageService.UpdateBlockContent(ctx, pageID, blockID, blockContent)
	if err != nil {
		respondError(w, log, err, "error updating block content")
		return
	}

	h.writeJSON(w, log, document)
}

func (h *Handler) toggleBlockVisibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pageID := chi.URLParam(r, "pageID")
	blockID := chi.URLParam(r, "blockID")

	document, err := h.services.PageService.ToggleBlockVisibility(ctx, pageID, blockID)
	if err != nil {
		respondError(w, log, err, "error toggling block visibility")
		return
	}

	h.writeJSON(w, log, document)
}

func (h *Handler) duplicateBlock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pageID := chi.URLParam(r, "pageID")
	blockID := chi.URLParam(r, "blockID")

	document, err := h.services.PageService.DuplicateBlock(ctx, pageID, blockID)
	if err != nil {
		respondError(w, log, err, "error duplicating block")
		return
	}

	h.writeJSON(w, log, document)
}

func (h *Handler) deleteBlock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pageID := chi.URLParam(r, "pageID")
	blockID := chi.URLParam(r, "blockID")

	document, err := h.services.PageService.DeleteBlock(ctx, pageID, blockID)
	if err != nil {
		respondError(w, log, err, "error deleting block")
		return
	}

	h.writeJSON(w, log, document)
}
