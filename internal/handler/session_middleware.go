package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"acedating-api/internal/logging"
	"acedating-api/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey string

const CtxUserID ctxKey = "userId"

// UserHeader is the fallback requester header sent by the web client.
const UserHeader = "X-User-Id"

// SessionResolver maps a bearer token to its user. *service.AuthService
// implements it.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (primitive.ObjectID, error)
}

// Session resolves an optional "Authorization: Bearer <token>" header and
// puts the user id in the context. Requests without a usable token, or with
// an expired or rotated one, pass through anonymously and fall back to
// X-User-Id.
func Session(resolver SessionResolver, log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := resolver.ResolveSession(r.Context(), token)
			if errors.Is(err, service.ErrUnauthorized) {
				log.Debug(r.Context(), "ignoring unresolvable session", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				writeError(w, r, log, err)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the session user, or the zero id for anonymous
// requests.
func UserIDFromContext(ctx context.Context) primitive.ObjectID {
	if id, ok := ctx.Value(CtxUserID).(primitive.ObjectID); ok {
		return id
	}
	return primitive.NilObjectID
}

// requesterID picks who is asking: the session user, then the X-User-Id
// header, then an id the caller found in the body or query.
func requesterID(r *http.Request, fallback string) string {
	if id := UserIDFromContext(r.Context()); !id.IsZero() {
		return id.Hex()
	}
	if h := strings.TrimSpace(r.Header.Get(UserHeader)); h != "" {
		return h
	}
	return strings.TrimSpace(fallback)
}
