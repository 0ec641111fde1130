package http

import (
	"context"
	"database/sql"
	"sync"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
)

// memoryStore backs every repository port for handler tests.
type memoryStore struct {
	mu        sync.Mutex
	users     []domain.User
	planets   []domain.Planet
	people    []domain.People
	favorites []domain.Favorite
	nextFavID int64
}

type (
	memoryUsers     struct{ s *memoryStore }
	memoryPlanets   struct{ s *memoryStore }
	memoryPeople    struct{ s *memoryStore }
	memoryFavorites struct{ s *memoryStore }
)

func (r memoryUsers) Create(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user := domain.User{ID: int64(len(r.s.users) + 1), Email: email, IsActive: true}
	r.s.users = append(r.s.users, user)
	return &user, nil
}

func (r memoryUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memoryUsers) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.User{}, r.s.users...), nil
}

func (r memoryPlanets) Create(_ context.Context, planet domain.Planet) (*domain.Planet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	planet.ID = int64(len(r.s.planets) + 1)
	r.s.planets = append(r.s.planets, planet)
	return &planet, nil
}

func (r memoryPlanets) Update(_ context.Context, id int64, fields domain.PlanetFields) (*domain.Planet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.planets {
		if r.s.planets[i].ID == id {
			fields.Apply(&r.s.planets[i])
			planet := r.s.planets[i]
			return &planet, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memoryPlanets) FindByID(_ context.Context, id int64) (*domain.Planet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, planet := range r.s.planets {
		if planet.ID == id {
			return &planet, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memoryPlanets) List(_ context.Context) ([]domain.Planet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.Planet{}, r.s.planets...), nil
}

func (r memoryPeople) Create(_ context.Context, person domain.People) (*domain.People, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	person.ID = int64(len(r.s.people) + 1)
	r.s.people = append(r.s.people, person)
	return &person, nil
}

func (r memoryPeople) Update(_ context.Context, id int64, fields domain.PeopleFields) (*domain.People, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.people {
		if r.s.people[i].ID == id {
			fields.Apply(&r.s.people[i])
			person := r.s.people[i]
			return &person, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memoryPeople) FindByID(_ context.Context, id int64) (*domain.People, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, person := range r.s.people {
		if person.ID == id {
			return &person, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memoryPeople) List(_ context.Context) ([]domain.People, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.People{}, r.s.people...), nil
}

func (r memoryFavorites) Add(_ context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextFavID++
	favorite.ID = r.s.nextFavID
	r.s.favorites = append(r.s.favorites, favorite)
	return &favorite, nil
}

func (r memoryFavorites) Remove(_ context.Context, favorite domain.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, row := range r.s.favorites {
		if row.UserID == favorite.UserID && row.Kind() == favorite.Kind() && row.TargetID() == favorite.TargetID() {
			r.s.favorites = append(r.s.favorites[:i], r.s.favorites[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r memoryFavorites) ListByUser(_ context.Context, userID int64) ([]domain.FavoriteListItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	items := make([]domain.FavoriteListItem, 0)
	for _, row := range r.s.favorites {
		if row.UserID == userID {
			items = append(items, domain.FavoriteListItem{Favorite: row})
		}
	}
	return items, nil
}
