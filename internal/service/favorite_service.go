package service

import (
	"context"
	"errors"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
	"github.com/njprem/StarWars_API_BackEnd/internal/metrics"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/ports"
)

type FavoriteService struct {
	favorites ports.FavoriteRepository
	users     ports.UserRepository
	planets   ports.PlanetRepository
	people    ports.PeopleRepository
}

func NewFavoriteService(
	favoriteRepo ports.FavoriteRepository,
	userRepo ports.UserRepository,
	planetRepo ports.PlanetRepository,
	peopleRepo ports.PeopleRepository,
) *FavoriteService {
	return &FavoriteService{
		favorites: favoriteRepo,
		users:     userRepo,
		planets:   planetRepo,
		people:    peopleRepo,
	}
}

func (s *FavoriteService) AddPlanet(ctx context.Context, userID, planetID int64) (*domain.Favorite, error) {
	return s.add(ctx, domain.NewPlanetFavorite(userID, planetID))
}

func (s *FavoriteService) AddPeople(ctx context.Context, userID, peopleID int64) (*domain.Favorite, error) {
	return s.add(ctx, domain.NewPeopleFavorite(userID, peopleID))
}

func (s *FavoriteService) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	return s.remove(ctx, domain.NewPlanetFavorite(userID, planetID))
}

func (s *FavoriteService) RemovePeople(ctx context.Context, userID, peopleID int64) error {
	return s.remove(ctx, domain.NewPeopleFavorite(userID, peopleID))
}

// ListByUser returns every favorite owned by the user, oldest first.
func (s *FavoriteService) ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteListItem, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.favorites.ListByUser(ctx, userID)
}

func (s *FavoriteService) add(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
	if err := favorite.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidFavorite, err)
	}
	// unknown user or target is rejected instead of stored as a dangling row
	if err := s.ensureUser(ctx, favorite.UserID); err != nil {
		return nil, err
	}
	if err := s.ensureTarget(ctx, favorite); err != nil {
		return nil, err
	}

	created, err := s.favorites.Add(ctx, favorite)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			// user or target vanished between the lookup and the insert
			if userErr := s.ensureUser(ctx, favorite.UserID); userErr != nil {
				return nil, userErr
			}
			return nil, s.missingTarget(favorite)
		case isCheckViolation(err):
			return nil, errors.Join(ErrInvalidFavorite, domain.ErrFavoriteTarget)
		default:
			return nil, err
		}
	}

	metrics.FavoritesAdded.WithLabelValues(string(favorite.Kind())).Inc()
	return created, nil
}

func (s *FavoriteService) remove(ctx context.Context, favorite domain.Favorite) error {
	if err := s.favorites.Remove(ctx, favorite); err != nil {
		if isNotFound(err) {
			return ErrFavoriteNotFound
		}
		return err
	}
	metrics.FavoritesRemoved.WithLabelValues(string(favorite.Kind())).Inc()
	return nil
}

func (s *FavoriteService) ensureUser(ctx context.Context, userID int64) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *FavoriteService) ensureTarget(ctx context.Context, favorite domain.Favorite) error {
	var err error
	switch favorite.Kind() {
	case domain.FavoriteKindPlanet:
		_, err = s.planets.FindByID(ctx, *favorite.PlanetID)
	default:
		_, err = s.people.FindByID(ctx, *favorite.PeopleID)
	}
	if err != nil {
		if isNotFound(err) {
			return s.missingTarget(favorite)
		}
		return err
	}
	return nil
}

func (s *FavoriteService) missingTarget(favorite domain.Favorite) error {
	if favorite.Kind() == domain.FavoriteKindPlanet {
		return ErrPlanetNotFound
	}
	return ErrPeopleNotFound
}
