package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/brightforge/agency-site-backend/database"
)

// setupRoutes wires the public read surface, the open submission endpoints,
// and the admin CRUD surface. Admin routes are gated server-side by the JWT
// role claim; database-backed routes degrade to 503 when unconfigured.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, db database.Database) {
	// Public routes backed by the database
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(requireDatabase(db))

		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/api/team", handlers.teamHandler.getAllMembers())
		r.Get("/api/team/{memberID}", handlers.teamHandler.getMember())

		r.Get("/api/events", handlers.eventHandler.getPublicEvents())

		r.Get("/api/services", handlers.serviceHandler.getPublicServices())
		r.Get("/api/services/{serviceID}", handlers.serviceHandler.getService())

		r.Get("/api/packages", handlers.packageHandler.getPublicPackages())

		r.Get("/api/feedback", handlers.feedbackHandler.getApprovedFeedback())
		r.Post("/api/feedback", handlers.feedbackHandler.createFeedback())

		r.Get("/api/network/collaborations", handlers.networkHandler.getAllCollaborations())
		r.Get("/api/network/collaborations/{collaborationID}", handlers.networkHandler.getCollaboration())
		r.Get("/api/network/partners", handlers.networkHandler.getAllPartners())
		r.Get("/api/network/partners/{partnerID}", handlers.networkHandler.getPartner())
	})

	// Public routes that work without the database
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/api/send-project-email", handlers.emailHandler.sendProjectEmail())
		r.Get("/api/test-email-config", handlers.emailHandler.testEmailConfig())
		r.Post("/api/chat", handlers.chatHandler.chat())
		r.Get("/api/health", handlers.healthHandler.health())
	})

	// Admin routes: authenticated, role-gated
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.adminOnly)

		r.Post("/api/upload", handlers.uploadHandler.uploadSingle())
		r.Post("/api/upload/multiple", handlers.uploadHandler.uploadMultiple())

		r.Group(func(r chi.Router) {
			r.Use(requireDatabase(db))

			r.Post("/api/projects", handlers.projectHandler.createProject())
			r.Put("/api/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/api/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/api/team", handlers.teamHandler.createMember())
			r.Put("/api/team/{memberID}", handlers.teamHandler.updateMember())
			r.Delete("/api/team/{memberID}", handlers.teamHandler.deleteMember())

			r.Get("/api/admin/events", handlers.eventHandler.getAllEvents())
			r.Get("/api/admin/events/{eventID}", handlers.eventHandler.getEvent())
			r.Post("/api/admin/events", handlers.eventHandler.createEvent())
			r.Put("/api/admin/events/{eventID}", handlers.eventHandler.updateEvent())
			r.Delete("/api/admin/events/{eventID}", handlers.eventHandler.deleteEvent())

			r.Post("/api/services", handlers.serviceHandler.createService())
			r.Put("/api/services/{serviceID}", handlers.serviceHandler.updateService())
			r.Delete("/api/services/{serviceID}", handlers.serviceHandler.deleteService())

			r.Get("/api/admin/packages", handlers.packageHandler.getAllPackages())
			r.Get("/api/admin/packages/{packageID}", handlers.packageHandler.getPackage())
			r.Post("/api/admin/packages", handlers.packageHandler.createPackage())
			r.Put("/api/admin/packages/{packageID}", handlers.packageHandler.updatePackage())
			r.Delete("/api/admin/packages/{packageID}", handlers.packageHandler.deletePackage())

			r.Get("/api/admin/feedback", handlers.feedbackHandler.getAllFeedback())
			r.Put("/api/admin/feedback/{feedbackID}", handlers.feedbackHandler.updateFeedback())
			r.Delete("/api/admin/feedback/{feedbackID}", handlers.feedbackHandler.deleteFeedback())

			r.Post("/api/network/collaborations", handlers.networkHandler.createCollaboration())
			r.Put("/api/network/collaborations/{collaborationID}", handlers.networkHandler.updateCollaboration())
			r.Delete("/api/network/collaborations/{collaborationID}", handlers.networkHandler.deleteCollaboration())
			r.Post("/api/network/partners", handlers.networkHandler.createPartner())
			r.Put("/api/network/partners/{partnerID}", handlers.networkHandler.updatePartner())
			r.Delete("/api/network/partners/{partnerID}", handlers.networkHandler.deletePartner())
		})
	})
}
