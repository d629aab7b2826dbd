package http

import (
	"encoding/json"
	"net/http"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/utils"
	"github.com/benharosh/studio-cms/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) submitContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var message models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.ContactService.SubmitMessage(ctx, message)
	if err != nil {
		respondError(w, log, err, "error submitting contact message")
		return
	}

	if _, err := utils.WriteJSON(w, saved, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response body")
	}
}

func (h *Handler) listContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	messages, err := h.services.ContactService.ListMessages(ctx)
	if err != nil {
		respondError(w, log, err, "error listing contact messages")
		return
	}

	h.writeJSON(w, log, messages)
}

func (h *Handler) deleteContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	messageID := chi.URLParam(r, "messageID")

	if err := h.services.ContactService.DeleteMessage(ctx, messageID); err != nil {
		respondError(w, log, err, "error deleting contact message")
		return
	}

	w.WriteHeader(http.StatusOK)
}
