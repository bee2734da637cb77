// Package token is responsible for generating and validating authentication tokens
package token

import (
	"context"

	"github.com/lordvidex/x/auth"

	"github.com/futebolada/futebolada-server/pool"
)

//go:generate mockgen -source=token.go -destination=../../internal/mocks/token.go -package=mocks -mock_names=Handler=MockTokenHandler

type Handler interface {
	// Generate signs a new token carrying the given identity.
	// The token lifetime depends on the kind (and role) of the identity.
	Generate(context.Context, pool.Identity) (auth.Token, error)
	// Validate checks the token signature and expiry and returns the
	// identity it carries.
	Validate(context.Context, auth.Token) (pool.Identity, error)
}
