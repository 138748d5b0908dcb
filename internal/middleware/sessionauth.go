// Package middleware provides HTTP middlewares for session gating and logging.
package middleware

import "net/http"

// Session exposes the current session flag to the middleware.
type Session interface {
	// Authenticated reports whether an admin session is active.
	Authenticated() bool
}

// SessionAuth rejects requests with 401 until a session is active. Read-only
// and login routes are mounted outside this middleware; everything behind it
// mutates content and requires the flag.
//
// This gates the admin UI flow only. The credential store is plaintext and
// client-visible, so this is not an access-control boundary.
func SessionAuth(session Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.Authenticated() {
				http.Error(w, "admin session required", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
