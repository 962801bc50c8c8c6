package middleware

import (
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/auth"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(auth.RoleAdmin) {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SubjectID extracts the authenticated account ID from JWT claims. Numeric
// claims decode as float64.
func SubjectID(r *http.Request) (int64, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, false
	}

	switch id := claims["subject_id"].(type) {
	case float64:
		return int64(id), true
	case int64:
		return id, true
	default:
		return 0, false
	}
}
