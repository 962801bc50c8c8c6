package middleware

import (
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/auth"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose verified token is missing or is not
// an access token. Runs after jwtauth.Verifier, which parses the token and
// stashes it in the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			tokenType, _ := claims["type"].(string)
			if token == nil || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
