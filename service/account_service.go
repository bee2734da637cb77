package service

import (
	"context"
	"strings"

	"github.com/lordvidex/errs"

	"github.com/futebolada/futebolada-server/pool"
	"github.com/futebolada/futebolada-server/repository"
	"github.com/futebolada/futebolada-server/service/hasher"
)

type accountService struct {
	ar repository.Admin
	pr repository.Player
	h  hasher.Bcrypt
}

func newAccountSrv(ar repository.Admin, pr repository.Player) *accountService {
	return &accountService{ar: ar, pr: pr}
}

// RegisterAdmin creates a new admin account. Role defaults to read-only
// when empty. Authorization is enforced upstream by the route gate.
//
// Uniqueness is check-then-insert: two concurrent registrations of the
// same username can race between the lookup and the insert. The store's
// unique index on LOWER(username) is the backstop.
func (s *accountService) RegisterAdmin(ctx context.Context, username, password, role string) (*pool.Admin, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errEmptyField("username")
	}
	if strings.TrimSpace(password) == "" {
		return nil, errEmptyField("password")
	}
	r := pool.RoleReadOnly
	if role != "" {
		var ok bool
		if r, ok = pool.ParseRole(role); !ok {
			return nil, errInvalidValue("role")
		}
	}
	existing, err := s.ar.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, errs.B().Code(errs.Internal).Msg("error looking up admin").Err()
	}
	if existing != nil {
		return nil, errUsernameInUse(username)
	}
	hash, err := s.h.Hash(password)
	if err != nil {
		return nil, errs.B().Code(errs.Internal).Msg("password processing error").Err()
	}
	admin := pool.Admin{Username: username, Password: hash, Role: r}
	admin.ID, err = s.ar.Create(ctx, admin)
	if err != nil {
		return nil, errs.B().Code(errs.Internal).Msg("error creating admin").Err()
	}
	return &admin, nil
}

// AdminByCredentials authenticates an admin account.
func (s *accountService) AdminByCredentials(ctx context.Context, username, password string) (*pool.Admin, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errEmptyField("username")
	}
	if strings.TrimSpace(password) == "" {
		return nil, errEmptyField("password")
	}
	admin, err := s.ar.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, errs.B().Code(errs.Internal).Msg("error looking up admin").Err()
	}
	if admin == nil {
		return nil, ErrWrongCredentials
	}
	if err = s.h.Compare(admin.Password, password); err != nil {
		return nil, ErrWrongCredentials
	}
	return admin, nil
}

// PlayerByCredentials authenticates a player account.
func (s *accountService) PlayerByCredentials(ctx context.Context, username, password string) (*pool.Player, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errEmptyField("username")
	}
	if strings.TrimSpace(password) == "" {
		return nil, errEmptyField("password")
	}
	player, err := s.pr.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, errs.B().Code(errs.Internal).Msg("error looking up player").Err()
	}
	if player == nil {
		return nil, ErrWrongCredentials
	}
	if err = s.h.Compare(player.Password, password); err != nil {
		return nil, ErrWrongCredentials
	}
	return player, nil
}

// DeleteAdmin removes an admin account by id.
func (s *accountService) DeleteAdmin(ctx context.Context, id int) error {
	deleted, err := s.ar.Delete(ctx, id)
	if err != nil {
		return errs.B().Code(errs.Internal).Msg("error deleting admin").Err()
	}
	if !deleted {
		return errIDNotFound(id, "admin")
	}
	return nil
}

// Player returns a single player by id.
func (s *accountService) Player(ctx context.Context, id int) (*pool.Player, error) {
	player, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, errs.B().Code(errs.Internal).Msg("error looking up player").Err()
	}
	if player == nil {
		return nil, errIDNotFound(id, "player")
	}
	return player, nil
}

// Players returns all players.
func (s *accountService) Players(ctx context.Context) ([]pool.Player, error) {
	players, err := s.pr.List(ctx)
	if err != nil {
		return nil, errs.B().Code(errs.Internal).Msg("error listing players").Err()
	}
	return players, nil
}

// ChangePlayerPassword replaces the password of the calling player.
func (s *accountService) ChangePlayerPassword(ctx context.Context, playerID int, password string) error {
	if strings.TrimSpace(password) == "" {
		return errEmptyField("password")
	}
	hash, err := s.h.Hash(password)
	if err != nil {
		return errs.B().Code(errs.Internal).Msg("password processing error").Err()
	}
	updated, err := s.pr.UpdatePassword(ctx, playerID, hash)
	if err != nil {
		return errs.B().Code(errs.Internal).Msg("error updating password").Err()
	}
	if !updated {
		return errIDNotFound(playerID, "player")
	}
	return nil
}

// ResetPlayerPassword resets a player's password to their own username,
// the documented default handed out after a reset.
func (s *accountService) ResetPlayerPassword(ctx context.Context, id int) error {
	player, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return errs.B().Code(errs.Internal).Msg("error looking up player").Err()
	}
	if player == nil {
		return errIDNotFound(id, "player")
	}
	hash, err := s.h.Hash(player.Username)
	if err != nil {
		return errs.B().Code(errs.Internal).Msg("password processing error").Err()
	}
	if _, err = s.pr.UpdatePassword(ctx, id, hash); err != nil {
		return errs.B().Code(errs.Internal).Msg("error updating password").Err()
	}
	return nil
}
