package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/modernscene/sitekeeper/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// NewRouter constructs the admin API handler.
//
// Routes:
//
//	POST   /api/login                                   → authHandler.Login
//	POST   /api/quote/link                              → quoteHandler.Link
//	GET    /api/content                                 → contentHandler.GetSnapshot
//	POST   /api/logout                                  → authHandler.Logout (session)
//	PUT    /api/credentials                             → authHandler.UpdateCredentials (session)
//	PUT    /api/content/{domain}/{category}             → contentHandler.ReplaceCategory (session)
//	POST   /api/content/{domain}/{category}/items       → contentHandler.AddItem (session)
//	PATCH  /api/content/{domain}/{category}/items/{id}  → contentHandler.UpdateItem (session)
//	DELETE /api/content/{domain}/{category}/items/{id}  → contentHandler.RemoveItem (session)
//	POST   /api/upload/{domain}/{category}              → uploadHandler.Images (session)
//	POST   /api/upload/avatar                           → uploadHandler.Avatar (session)
//
// Reading content, logging in and quote links are open; every mutation sits
// behind the session middleware.
func NewRouter(
	authHandler *AuthHandler,
	contentHandler *ContentHandler,
	uploadHandler *UploadHandler,
	quoteHandler *QuoteHandler,
	session middleware.Session,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/login", authHandler.Login)
		r.Post("/quote/link", quoteHandler.Link)
		r.Get("/content", contentHandler.GetSnapshot)

		// Protected group: requires an active admin session
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(session))

			r.Post("/logout", authHandler.Logout)
			r.Put("/credentials", authHandler.UpdateCredentials)

			r.Put("/content/{domain}/{category}", contentHandler.ReplaceCategory)
			r.Post("/content/{domain}/{category}/items", contentHandler.AddItem)
			r.Patch("/content/{domain}/{category}/items/{id}", contentHandler.UpdateItem)
			r.Delete("/content/{domain}/{category}/items/{id}", contentHandler.RemoveItem)

			r.Post("/upload/avatar", uploadHandler.Avatar)
			r.Post("/upload/{domain}/{category}", uploadHandler.Images)
		})
	})

	return r
}
