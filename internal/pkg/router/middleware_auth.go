package router

import (
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/storefront/internal/pkg/jwt"
)

// HeaderUserKey carries the access token for clients that cannot set
// Authorization. Both "<token>" and "Bearer <token>" are accepted.
const HeaderUserKey = "USER-KEY"

// Enforcer is the subset of *casbin.Enforcer the router needs.
type Enforcer interface {
	Enforce(rvals ...any) (bool, error)
}

// tokenFromRequest prefers a Bearer Authorization header and falls back to
// USER-KEY when Authorization is absent or uses another scheme.
func tokenFromRequest(r *http.Request) string {
	if token := jwt.ExtractToken(r.Header.Get("Authorization"), true); token != "" {
		return token
	}
	return jwt.ExtractToken(r.Header.Get(HeaderUserKey), false)
}

func middlewareAuthentication(verifier jwt.JWT, public publicEndpoints) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if public.has(r.Method, matchedRoutePath(r)) {
				next.ServeHTTP(w, r)
				return
			}

			token := tokenFromRequest(r)
			if token == "" {
				writeJSON(w, errorResponse{Message: "Authentication required", Code: "AUT_02"}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				writeJSON(w, errorResponse{Message: "Invalid or expired token", Code: "AUT_02"}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.SetAuth(r.Context(), claims)))
		})
	}
}

func middlewareAuthorization(enforcer Enforcer, obj, act string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clm := jwt.GetAuth(r.Context())
			if clm == nil {
				writeJSON(w, errorResponse{Message: "Authentication required", Code: "AUT_02"}, http.StatusUnauthorized)
				return
			}

			ok, err := enforcer.Enforce(clm.Subject, obj, act)
			if err != nil {
				slog.ErrorContext(r.Context(), "failed to check authorization", "customer_id", clm.Subject, "error", err)
				writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
				return
			}
			if !ok {
				writeJSON(w, errorResponse{Message: "Access forbidden", Code: "AUT_03"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
