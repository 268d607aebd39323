package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	apperrors "github.com/skillsenselab/fintrust/errors"
	"github.com/skillsenselab/fintrust/logger"
)

// Recovery returns middleware that recovers from panics, logs the stack, and
// responds with a generic 500 envelope. The stack trace goes to the log
// only; it is never written to the response body.
func Recovery(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("Panic recovered", map[string]interface{}{
						"panic":  rec,
						"stack":  string(debug.Stack()),
						"path":   r.URL.Path,
						"method": r.Method,
					})
					writeJSONError(w, apperrors.Internal(nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// writeJSONError writes an AppError envelope outside of Gin's context.
func writeJSONError(w http.ResponseWriter, appErr *apperrors.AppError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(appErr.ToResponse())
}
