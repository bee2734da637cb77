package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lordvidex/errs"
	"github.com/lordvidex/x/req"
	"github.com/lordvidex/x/resp"
)

func (h *Handler) weeks(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.srv.Weeks(r.Context())
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, weeks)
}

func (h *Handler) week(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.Error(w, errs.B().Code(errs.InvalidArgument).Msg("invalid parameters").Err())
		return
	}
	week, err := h.srv.Week(r.Context(), id)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, week)
}

type createWeekParams struct {
	Date time.Time `json:"date"`
}

func (h *Handler) createWeek(w http.ResponseWriter, r *http.Request) {
	var payload createWeekParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	week, err := h.srv.CreateWeek(r.Context(), payload.Date)
	if err != nil {
		resp.Error(w, err)
		return
	}
	created(w, week)
}
