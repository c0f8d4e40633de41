package middleware

import (
	"context"
	"docvault/internal/models"
	"log/slog"
	"net/http"
)

// OptionalAuth resolves the token query parameter to a user and puts it on
// the request context. Requests without a valid token pass through
// anonymously; document endpoints stay public.
func OptionalAuth(log *slog.Logger, storer SessionStorer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := pkg + "OptionalAuth"

			token := r.URL.Query().Get("token")
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			requester, err := storer.UserByToken(r.Context(), token)
			if err != nil {
				log.With(slog.String("op", op)).Debug("token did not resolve to a user", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), models.UserContextKey, requester)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
