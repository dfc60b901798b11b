package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhive/payroll-backend-go/internal/domain/auth"
	"github.com/staffhive/payroll-backend-go/internal/handler/http/response"
)

// AccessTokenRequired rejects requests whose bearer token is missing,
// unparseable, or not an access token. Refresh tokens travel only in the
// auth cookie and must never authenticate an API call.
func AccessTokenRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
