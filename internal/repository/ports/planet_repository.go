package ports

import (
	"context"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
)

type PlanetRepository interface {
	Create(ctx context.Context, planet domain.Planet) (*domain.Planet, error)
	Update(ctx context.Context, id int64, fields domain.PlanetFields) (*domain.Planet, error)
	FindByID(ctx context.Context, id int64) (*domain.Planet, error)
	List(ctx context.Context) ([]domain.Planet, error)
}
