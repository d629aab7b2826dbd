package http

import (
	"encoding/json"
	"net/http"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/models"
)

func (h *Handler) getSiteSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	settings, err := h.services.SettingsService.GetSiteSettings(ctx)
	if err != nil {
		respondError(w, log, err, "error getting site settings")
		return
	}

	h.writeJSON(w, log, settings)
}

func (h *Handler) saveSiteSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var settings models.SiteSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.SettingsService.SaveSiteSettings(ctx, settings)
	if err != nil {
		respondError(w, log, err, "error saving site settings")
		return
	}

	h.writeJSON(w, log, saved)
}

func (h *Handler) getDesignSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	settings, err := h.services.SettingsService.GetDesignSettings(ctx)
	if err != nil {
		respondError(w, log, err, "error getting design settings")
		return
	}

	h.writeJSON(w, log, settings)
}

func (h *Handler) saveDesignSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var settings models.DesignSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.SettingsService.SaveDesignSettings(ctx, settings)
	if err != nil {
		respondError(w, log, err, "error saving design settings")
		return
	}

	h.writeJSON(w, log, saved)
}
