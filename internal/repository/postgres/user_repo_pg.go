package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email string) (*domain.User, error) {
	const query = `
		INSERT INTO user_account (email)
		VALUES ($1)
		RETURNING id, email, is_active, created_at
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
		SELECT id, email, is_active, created_at
		FROM user_account
		WHERE id = $1
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
		SELECT id, email, is_active, created_at
		FROM user_account
		ORDER BY id
	`
	users := make([]domain.User, 0)
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
