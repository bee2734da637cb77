package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/futebolada/futebolada-server/pool"
	"github.com/futebolada/futebolada-server/repository"
)

var _ repository.Admin = new(AdminRepo)

type AdminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepo(db *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{db: db}
}

// GetByUsername implements repository.Admin.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*pool.Admin, error) {
	const query = `
		SELECT id_admin, username, password, role
		FROM admin
		WHERE LOWER(username) = LOWER($1)`
	var a pool.Admin
	err := r.db.QueryRow(ctx, query, username).Scan(&a.ID, &a.Username, &a.Password, &a.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create implements repository.Admin.
func (r *AdminRepo) Create(ctx context.Context, admin pool.Admin) (int, error) {
	const query = `
		INSERT INTO admin (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id_admin`
	var id int
	err := r.db.QueryRow(ctx, query, admin.Username, admin.Password, admin.Role).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Delete implements repository.Admin.
func (r *AdminRepo) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM admin WHERE id_admin = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
