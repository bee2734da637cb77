package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lordvidex/errs"
	"github.com/lordvidex/x/req"
	"github.com/lordvidex/x/resp"

	"github.com/futebolada/futebolada-server/pool"
)

type playerLoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type playerLoginResponse struct {
	AccessToken string `json:"accessToken"`
}

func (h *Handler) playerLogin(w http.ResponseWriter, r *http.Request) {
	var payload playerLoginParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	ctx := r.Context()
	player, err := h.srv.PlayerByCredentials(ctx, payload.Username, payload.Password)
	if err != nil {
		resp.Error(w, err)
		return
	}
	token, err := h.token.Generate(ctx, pool.PlayerIdentity(player.ID))
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, playerLoginResponse{AccessToken: string(token)})
}

// currentPlayer returns the profile of the calling player. Admin tokens
// have no player row and are rejected.
func (h *Handler) currentPlayer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := IdentityFromCtx(ctx)
	if identity == nil || !identity.IsPlayer() {
		resp.Error(w, ErrForbidden)
		return
	}
	player, err := h.srv.Player(ctx, identity.PlayerID)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, player)
}

func (h *Handler) players(w http.ResponseWriter, r *http.Request) {
	players, err := h.srv.Players(r.Context())
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, players)
}

type changePasswordParams struct {
	Password string `json:"password"`
}

// changePassword lets a player replace their own password. Only the
// caller's row is ever touched; admins have no row to touch.
func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := IdentityFromCtx(ctx)
	if identity == nil || !identity.IsPlayer() {
		resp.Error(w, ErrForbidden)
		return
	}
	var payload changePasswordParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	if err := h.srv.ChangePlayerPassword(ctx, identity.PlayerID, payload.Password); err != nil {
		resp.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.Error(w, errs.B().Code(errs.InvalidArgument).Msg("invalid parameters").Err())
		return
	}
	if err = h.srv.ResetPlayerPassword(r.Context(), id); err != nil {
		resp.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
