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

type adminLoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var payload adminLoginParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	ctx := r.Context()
	admin, err := h.srv.AdminByCredentials(ctx, payload.Username, payload.Password)
	if err != nil {
		resp.Error(w, err)
		return
	}
	token, err := h.token.Generate(ctx, pool.AdminIdentity(admin.ID, admin.Username, admin.Role))
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, adminLoginResponse{AccessToken: string(token), Username: admin.Username})
}

type registerParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type registerResponse struct {
	AccessToken string `json:"accessToken"`
	ID          int    `json:"id"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var payload registerParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	ctx := r.Context()
	admin, err := h.srv.RegisterAdmin(ctx, payload.Username, payload.Password, payload.Role)
	if err != nil {
		resp.Error(w, err)
		return
	}
	token, err := h.token.Generate(ctx, pool.AdminIdentity(admin.ID, admin.Username, admin.Role))
	if err != nil {
		resp.Error(w, err)
		return
	}
	created(w, registerResponse{AccessToken: string(token), ID: admin.ID})
}

func (h *Handler) deleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.Error(w, errs.B().Code(errs.InvalidArgument).Msg("invalid parameters").Err())
		return
	}
	if err = h.srv.DeleteAdmin(r.Context(), id); err != nil {
		resp.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
