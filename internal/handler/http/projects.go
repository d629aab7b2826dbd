package http

import (
	"encoding/json"
	"net/http"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/utils"
	"github.com/benharosh/studio-cms/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.ProjectFilter{
		Category: r.URL.Query().Get("category"),
		Tag:      r.URL.Query().Get("tag"),
	}

	// Unauthenticated listings never see unpublished projects; the admin
	// panel sees everything unless it asks for published only.
	if _, ok := utils.GetAdminLoginFromContext(ctx); !ok {
		filter.PublishedOnly = true
	} else {
		filter.PublishedOnly = r.URL.Query().Get("published") == "true"
	}

	projects, err := h.services.ProjectService.ListProjects(ctx, filter)
	if err != nil {
		respondError(w, log, err, "error listing projects")
		return
	}

	h.writeJSON(w, log, projects)
}

func (h *Handler) getProjectBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	project, err := h.services.ProjectService.GetProjectBySlug(ctx, slug)
	if err != nil {
		respondError(w, log, err, "error getting project by slug")
		return
	}

	h.writeJSON(w, log, project)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ProjectService.CreateProject(ctx, project)
	if err != nil {
		respondError(w, log, err, "error creating project")
		return
	}

	h.writeJSON(w, log, created)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// The path is authoritative for which record is updated.
	project.ID = chi.URLParam(r, "projectID")

	if err := h.services.ProjectService.UpdateProject(ctx, project); err != nil {
		respondError(w, log, err, "error updating project")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	projectID := chi.URLParam(r, "projectID")

	if err := h.services.ProjectService.DeleteProject(ctx, projectID); err != nil {
		respondError(w, log, err, "error deleting project")
		return
	}

	w.WriteHeader(http.StatusOK)
}
