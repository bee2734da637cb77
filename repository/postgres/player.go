package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/futebolada/futebolada-server/pool"
	"github.com/futebolada/futebolada-server/repository"
)

var _ repository.Player = new(PlayerRepo)

type PlayerRepo struct {
	db *pgxpool.Pool
}

func NewPlayerRepo(db *pgxpool.Pool) *PlayerRepo {
	return &PlayerRepo{db: db}
}

const playerColumns = `id_player, first_name, last_name, avatar, username, password`

// GetByUsername implements repository.Player.
func (r *PlayerRepo) GetByUsername(ctx context.Context, username string) (*pool.Player, error) {
	const query = `
		SELECT ` + playerColumns + `
		FROM player
		WHERE LOWER(username) = LOWER($1)`
	return r.one(r.db.QueryRow(ctx, query, username))
}

// GetByID implements repository.Player.
func (r *PlayerRepo) GetByID(ctx context.Context, id int) (*pool.Player, error) {
	const query = `
		SELECT ` + playerColumns + `
		FROM player
		WHERE id_player = $1`
	return r.one(r.db.QueryRow(ctx, query, id))
}

// UpdatePassword implements repository.Player.
func (r *PlayerRepo) UpdatePassword(ctx context.Context, id int, hash string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE player SET password = $2 WHERE id_player = $1`, id, hash)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// List implements repository.Player.
func (r *PlayerRepo) List(ctx context.Context) ([]pool.Player, error) {
	const query = `
		SELECT ` + playerColumns + `
		FROM player
		ORDER BY id_player`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var players []pool.Player
	for rows.Next() {
		var p pool.Player
		if err = rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Avatar, &p.Username, &p.Password); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *PlayerRepo) one(row pgx.Row) (*pool.Player, error) {
	var p pool.Player
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Avatar, &p.Username, &p.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
