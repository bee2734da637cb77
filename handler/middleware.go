package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/lordvidex/errs"
	"github.com/lordvidex/x/auth"
	"github.com/lordvidex/x/resp"

	"github.com/futebolada/futebolada-server/pool"
)

const authHeaderKey = "Authorization"

type contextKey struct {
	name string
}

// private vars
var (
	identityKey = &contextKey{"identity"}
)

// Errors
var (
	ErrUnauthenticated = errs.B().Code(errs.Unauthenticated).Msg("invalid auth token").Err()
	ErrForbidden       = errs.B().Code(errs.Forbidden).Msg("not authorized to access this resource").Err()
)

// IdentityFromCtx returns the identity resolved by authMiddleware, or nil
// when the request carried no valid token.
func IdentityFromCtx(ctx context.Context) *pool.Identity {
	v, _ := ctx.Value(identityKey).(*pool.Identity)
	return v
}

// authMiddleware extracts the bearer token from the authorization header,
// validates it and injects the resolved identity into the request context.
// This is the only place identity is established; downstream handlers
// trust the context without re-verifying the token.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		authHeader := r.Header.Get(authHeaderKey)
		token, err := decodeHeader(authHeader)
		if err != nil {
			resp.Error(w, err)
			return
		}
		identity, err := h.token.Validate(ctx, auth.Token(token))
		if err != nil {
			resp.Error(w, ErrUnauthenticated)
			return
		}
		ctx = context.WithValue(ctx, identityKey, &identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireFullAdmin rejects every caller that is not a full admin: players,
// read-only admins and requests that never got an identity attached.
func (h *Handler) requireFullAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromCtx(r.Context())
		if identity == nil || !identity.IsFullAdmin() {
			resp.Error(w, ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func decodeHeader(auth string) (string, error) {
	spl := strings.Split(auth, " ")
	if len(spl) != 2 || strings.ToLower(spl[0]) != "bearer" || spl[1] == "" {
		return "", ErrUnauthenticated
	}
	return spl[1], nil
}
