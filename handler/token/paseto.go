package token

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lordvidex/errs"
	"github.com/lordvidex/x/auth"
	"github.com/o1egl/paseto/v2"

	"github.com/futebolada/futebolada-server/pool"
)

var defaultFooter = "futebolada"

// Token lifetimes per identity kind. Player tokens deliberately outlive
// admin tokens by a wide margin: a convenience trade-off inherited from
// the product, kept on purpose and up for review, not an oversight.
const (
	adminTTL    = 7 * 24 * time.Hour
	readOnlyTTL = 24 * time.Hour
	playerTTL   = 150 * 24 * time.Hour
)

const identityClaim = "identity"

// ErrInvalidToken is returned for every validation failure. Expired,
// tampered and malformed tokens are indistinguishable to the caller.
var ErrInvalidToken = errs.B().Code(errs.Unauthenticated).Msg("invalid auth token").Err()

type Paseto struct {
	footer       string
	symmetricKey []byte
}

func New(key []byte, footer string) (*Paseto, error) {
	if len(key) != 32 {
		return nil, errors.New("invalid key length, key must be 32 bytes long")
	}
	if footer == "" {
		footer = defaultFooter
	}
	pas := Paseto{
		symmetricKey: key,
		footer:       footer,
	}
	return &pas, nil
}

func (p *Paseto) Generate(ctx context.Context, identity pool.Identity) (auth.Token, error) {
	payload := p.fromIdentity(identity)
	str, err := paseto.Encrypt(p.symmetricKey, payload, p.footer)
	if err != nil {
		return "", err
	}
	return auth.Token(str), nil
}

func (p *Paseto) Validate(ctx context.Context, token auth.Token) (pool.Identity, error) {
	var payload paseto.JSONToken
	if err := paseto.Decrypt(string(token), p.symmetricKey, &payload, &p.footer); err != nil {
		return pool.Identity{}, ErrInvalidToken
	}
	if err := payload.Validate(paseto.ValidAt(time.Now()), paseto.IssuedBy(p.footer)); err != nil {
		return pool.Identity{}, ErrInvalidToken
	}
	identity, err := p.toIdentity(payload)
	if err != nil || !identity.Valid() {
		return pool.Identity{}, ErrInvalidToken
	}
	return identity, nil
}

func (p *Paseto) fromIdentity(identity pool.Identity) paseto.JSONToken {
	now := time.Now()
	payload := paseto.JSONToken{
		Jti:        uuid.NewString(),
		IssuedAt:   now,
		NotBefore:  now,
		Expiration: now.Add(ttl(identity)),
		Issuer:     p.footer,
	}
	payload.Set(identityClaim, identity)
	return payload
}

func (p *Paseto) toIdentity(t paseto.JSONToken) (pool.Identity, error) {
	var identity pool.Identity
	err := t.Get(identityClaim, &identity)
	if err != nil {
		return pool.Identity{}, err
	}
	return identity, nil
}

func ttl(identity pool.Identity) time.Duration {
	if identity.Kind == pool.KindAdmin {
		if identity.Role == pool.RoleAdmin {
			return adminTTL
		}
		return readOnlyTTL
	}
	return playerTTL
}
