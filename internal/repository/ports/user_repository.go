package ports

import (
	"context"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
