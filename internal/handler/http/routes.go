package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// public site routes
	router.Group(func(r chi.Router) {
		r.Get("/api/pages/{pageID}", h.getPage)
		r.Get("/api/pages/{pageID}/view", h.getPageView)

		r.Get("/api/projects", h.listProjects)
		r.Get("/api/projects/{slug}", h.getProjectBySlug)

		r.Get("/api/categories", h.listCategories)

		r.Get("/api/settings/config", h.getSiteSettings)
		r.Get("/api/settings/design", h.getDesignSettings)

		r.Get("/api/gallery", h.listGalleryImages)

		r.Post("/api/contact", h.submitContactMessage)

		r.Post("/api/admin/login", h.login)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/admin", func(r chi.Router) {
			r.Route("/pages/{pageID}", func(r chi.Router) {
				r.Get("/", h.getPage)
				r.Put("/", h.savePage)
				r.Post("/reset", h.resetPage)

				r.Route("/blocks/{blockID}", func(r chi.Router) {
					r.Put("/", h.updateBlockContent)
					r.Post("/visibility", h.toggleBlockVisibility)
					r.Post("/duplicate", h.duplicateBlock)
					r.Delete("/", h.deleteBlock)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.listProjects)
				r.Post("/", h.createProject)
				r.Put("/{projectID}", h.updateProject)
				r.Delete("/{projectID}", h.deleteProject)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.listCategories)
				r.Post("/", h.createCategory)
				r.Put("/{categoryID}", h.updateCategory)
				r.Delete("/{categoryID}", h.deleteCategory)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Put("/config", h.saveSiteSettings)
				r.Put("/design", h.saveDesignSettings)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", h.listContactMessages)
				r.Delete("/{messageID}", h.deleteContactMessage)
			})

			r.Route("/gallery", func(r chi.Router) {
				r.Post("/", h.addGalleryImage)
				r.Delete("/{imageID}", h.deleteGalleryImage)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
