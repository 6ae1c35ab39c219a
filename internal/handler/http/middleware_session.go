package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/rs/zerolog"
)

// withSession resolves the request's session credential to a principal and
// stores it in the request context. Requests without a valid credential
// continue as anonymous; rejecting them is left to requireAuth.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal := h.services.AuthService.ResolveSession(ctx, sessionCredential(r))
		if userID, ok := principal.UserID(); ok {
			l := zerolog.Ctx(ctx).With().Int64("user_id", userID).Logger()
			ctx = l.WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// requireAuth answers 401 for anonymous principals.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.GetPrincipalFromContext(r.Context()).IsAnonymous() {
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sessionCredential returns the bearer token when an Authorization header is
// present and well formed, the session cookie otherwise.
func sessionCredential(r *http.Request) string {
	if token, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		return token
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}
