package ports

import (
	"context"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
)

type FavoriteRepository interface {
	Add(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error)
	// Remove deletes the oldest favorite matching the user and the target
	// set on the given favorite.
	Remove(ctx context.Context, favorite domain.Favorite) error
	ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteListItem, error)
}
