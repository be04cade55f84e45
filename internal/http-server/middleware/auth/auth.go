package auth

import (
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/lib/logger/sl"
	"chapterEvents/internal/models"
	"chapterEvents/internal/storage"
	"context"
	"errors"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strings"
)

type ctxKey struct{}

type TokenVerifier interface {
	Verify(tokenString string) (userID string, role models.Role, err error)
}

type IdentityResolver interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// New authenticates the bearer token and stores the caller, with the chapter
// taken from the user directory, in the request context.
func New(log *slog.Logger, verifier TokenVerifier, users IdentityResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, r, "missing bearer token")
				return
			}

			userID, role, err := verifier.Verify(token)
			if err != nil {
				log.Warn("token rejected", sl.Err(err))
				unauthorized(w, r, "invalid token")
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					unauthorized(w, r, "unknown user")
					return
				}
				log.Error("failed to resolve user", slog.String("user_id", userID), sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to resolve user"))
				return
			}

			actor := models.Actor{
				UserID:    userID,
				Role:      role,
				ChapterID: user.ChapterID,
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		}

		return http.HandlerFunc(fn)
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.ErrorWithCode(response.CodeUnauthorized, msg))
}

func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(models.Actor)
	return actor, ok
}
