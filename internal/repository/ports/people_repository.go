package ports

import (
	"context"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
)

type PeopleRepository interface {
	Create(ctx context.Context, people domain.People) (*domain.People, error)
	Update(ctx context.Context, id int64, fields domain.PeopleFields) (*domain.People, error)
	FindByID(ctx context.Context, id int64) (*domain.People, error)
	List(ctx context.Context) ([]domain.People, error)
}
