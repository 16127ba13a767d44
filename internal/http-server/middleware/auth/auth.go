package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"ticketGate/internal/lib/api/response"
	"ticketGate/internal/lib/jwt"
	"ticketGate/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type ctxKey struct{}

// New verifies the bearer token against the configured signing secret
// and stores the caller's user id in the request context.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization header is required"))
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")

			claims, err := jwt.Parse(token, secret)
			if err != nil {
				log.Warn("invalid token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("token is not valid"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// UserID returns the authenticated caller's id set by New.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok
}

// WithUserID returns a context carrying the caller's id, the same way
// the middleware does.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}
