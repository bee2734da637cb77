package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/futebolada/futebolada-server/pool"
	"github.com/futebolada/futebolada-server/repository"
)

var _ repository.Week = new(WeekRepo)

type WeekRepo struct {
	db *pgxpool.Pool
}

func NewWeekRepo(db *pgxpool.Pool) *WeekRepo {
	return &WeekRepo{db: db}
}

// List implements repository.Week.
func (r *WeekRepo) List(ctx context.Context) ([]pool.Week, error) {
	rows, err := r.db.Query(ctx, `SELECT id_week, date FROM week ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var weeks []pool.Week
	for rows.Next() {
		var w pool.Week
		if err = rows.Scan(&w.ID, &w.Date); err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

// GetByID implements repository.Week.
func (r *WeekRepo) GetByID(ctx context.Context, id int) (*pool.Week, error) {
	var w pool.Week
	err := r.db.QueryRow(ctx, `SELECT id_week, date FROM week WHERE id_week = $1`, id).
		Scan(&w.ID, &w.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create implements repository.Week.
func (r *WeekRepo) Create(ctx context.Context, date time.Time) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `INSERT INTO week (date) VALUES ($1) RETURNING id_week`, date).
		Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
