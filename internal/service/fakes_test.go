package service

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
)

// --- Test doubles ---

type memoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.User

	findErr error
}

func newMemoryUserRepo(emails ...string) *memoryUserRepo {
	repo := &memoryUserRepo{items: make(map[int64]domain.User)}
	for _, email := range emails {
		_, _ = repo.Create(context.Background(), email)
	}
	return repo
}

func (m *memoryUserRepo) Create(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.items {
		if existing.Email == email {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	m.nextID++
	user := domain.User{ID: m.nextID, Email: email, IsActive: true}
	m.items[user.ID] = user
	return &user, nil
}

func (m *memoryUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	user, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &user, nil
}

func (m *memoryUserRepo) List(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]domain.User, 0, len(m.items))
	for _, user := range m.items {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

type memoryPlanetRepo struct {
	nextID int64
	items  map[int64]domain.Planet
}

func newMemoryPlanetRepo(planets ...domain.Planet) *memoryPlanetRepo {
	repo := &memoryPlanetRepo{items: make(map[int64]domain.Planet)}
	for _, planet := range planets {
		_, _ = repo.Create(context.Background(), planet)
	}
	return repo
}

func (m *memoryPlanetRepo) Create(_ context.Context, planet domain.Planet) (*domain.Planet, error) {
	m.nextID++
	planet.ID = m.nextID
	m.items[planet.ID] = planet
	return &planet, nil
}

func (m *memoryPlanetRepo) Update(_ context.Context, id int64, fields domain.PlanetFields) (*domain.Planet, error) {
	planet, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	fields.Apply(&planet)
	m.items[id] = planet
	return &planet, nil
}

func (m *memoryPlanetRepo) FindByID(_ context.Context, id int64) (*domain.Planet, error) {
	planet, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &planet, nil
}

func (m *memoryPlanetRepo) List(_ context.Context) ([]domain.Planet, error) {
	planets := make([]domain.Planet, 0, len(m.items))
	for _, planet := range m.items {
		planets = append(planets, planet)
	}
	sort.Slice(planets, func(i, j int) bool { return planets[i].ID < planets[j].ID })
	return planets, nil
}

type memoryPeopleRepo struct {
	nextID int64
	items  map[int64]domain.People
}

func newMemoryPeopleRepo(people ...domain.People) *memoryPeopleRepo {
	repo := &memoryPeopleRepo{items: make(map[int64]domain.People)}
	for _, person := range people {
		_, _ = repo.Create(context.Background(), person)
	}
	return repo
}

func (m *memoryPeopleRepo) Create(_ context.Context, person domain.People) (*domain.People, error) {
	m.nextID++
	person.ID = m.nextID
	m.items[person.ID] = person
	return &person, nil
}

func (m *memoryPeopleRepo) Update(_ context.Context, id int64, fields domain.PeopleFields) (*domain.People, error) {
	person, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	fields.Apply(&person)
	m.items[id] = person
	return &person, nil
}

func (m *memoryPeopleRepo) FindByID(_ context.Context, id int64) (*domain.People, error) {
	person, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &person, nil
}

func (m *memoryPeopleRepo) List(_ context.Context) ([]domain.People, error) {
	items := make([]domain.People, 0, len(m.items))
	for _, person := range m.items {
		items = append(items, person)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

type memoryFavoriteRepo struct {
	nextID int64
	rows   []domain.Favorite

	addErr error
}

func (m *memoryFavoriteRepo) Add(_ context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	m.nextID++
	favorite.ID = m.nextID
	m.rows = append(m.rows, favorite)
	return &favorite, nil
}

func (m *memoryFavoriteRepo) Remove(_ context.Context, favorite domain.Favorite) error {
	for i, row := range m.rows {
		if row.UserID != favorite.UserID || row.Kind() != favorite.Kind() || row.TargetID() != favorite.TargetID() {
			continue
		}
		m.rows = append(m.rows[:i], m.rows[i+1:]...)
		return nil
	}
	return sql.ErrNoRows
}

func (m *memoryFavoriteRepo) ListByUser(_ context.Context, userID int64) ([]domain.FavoriteListItem, error) {
	items := make([]domain.FavoriteListItem, 0)
	for _, row := range m.rows {
		if row.UserID == userID {
			items = append(items, domain.FavoriteListItem{Favorite: row})
		}
	}
	return items, nil
}

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
