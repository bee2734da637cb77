package service

import (
	"context"
	"time"

	"github.com/lordvidex/errs"

	"github.com/futebolada/futebolada-server/pool"
	"github.com/futebolada/futebolada-server/repository"
)

// weekService is plain pass-through CRUD over the week table.
type weekService struct {
	wr repository.Week
}

func newWeekSrv(wr repository.Week) *weekService {
	return &weekService{wr: wr}
}

// Weeks returns all weeks, most recent first.
func (s *weekService) Weeks(ctx context.Context) ([]pool.Week, error) {
	weeks, err := s.wr.List(ctx)
	if err != nil {
		return nil, errs.B().Code(errs.Internal).Msg("error listing weeks").Err()
	}
	return weeks, nil
}

// Week returns a week by id.
func (s *weekService) Week(ctx context.Context, id int) (*pool.Week, error) {
	week, err := s.wr.GetByID(ctx, id)
	if err != nil {
		return nil, errs.B().Code(errs.Internal).Msg("error looking up week").Err()
	}
	if week == nil {
		return nil, errIDNotFound(id, "week")
	}
	return week, nil
}

// CreateWeek inserts a new week for the given date.
func (s *weekService) CreateWeek(ctx context.Context, date time.Time) (*pool.Week, error) {
	if date.IsZero() {
		return nil, errEmptyField("date")
	}
	id, err := s.wr.Create(ctx, date)
	if err != nil {
		return nil, errs.B().Code(errs.Internal).Msg("error creating week").Err()
	}
	return &pool.Week{ID: id, Date: date}, nil
}
