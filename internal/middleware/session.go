package middleware

import (
	"net/http"

	"github.com/templui/perfdesk/internal/ctxkeys"
	"github.com/templui/perfdesk/internal/service"
)

// Session reads the session cookie and, when it verifies, adds the session
// to the request context. Bad cookies are cleared and the request continues
// anonymously.
func Session(sessionService *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(service.SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := sessionService.Verify(cookie.Value)
			if err != nil {
				sessionService.ClearCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession sends anonymous callers to the sign-in page
func RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.Session(r.Context()) == nil {
			Redirect(w, r, "/")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireGuest sends signed-in callers to the dashboard
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.Session(r.Context()) != nil {
			Redirect(w, r, "/app/goals")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// Redirect issues a 303, or an HX-Redirect header for htmx requests so the
// browser does a full page load.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
