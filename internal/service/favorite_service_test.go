package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
)

type favoriteFixture struct {
	svc       *FavoriteService
	favorites *memoryFavoriteRepo
	users     *memoryUserRepo
}

func newFavoriteFixture() favoriteFixture {
	users := newMemoryUserRepo("luke@rebels.org")
	planets := newMemoryPlanetRepo(domain.Planet{Name: "Tatooine", Description: "desert planet", Population: 200000})
	people := newMemoryPeopleRepo(domain.People{Name: "Leia Organa", HairColor: "brown", Gender: "female"})
	favorites := &memoryFavoriteRepo{}
	return favoriteFixture{
		svc:       NewFavoriteService(favorites, users, planets, people),
		favorites: favorites,
		users:     users,
	}
}

func TestFavoriteService_AddPlanetThenList(t *testing.T) {
	ctx := context.Background()
	f := newFavoriteFixture()

	fav, err := f.svc.AddPlanet(ctx, 1, 1)
	if err != nil {
		t.Fatalf("AddPlanet returned error: %v", err)
	}
	if fav.PlanetID == nil || *fav.PlanetID != 1 {
		t.Fatalf("expected planet reference 1, got %v", fav.PlanetID)
	}
	if fav.PeopleID != nil {
		t.Fatalf("expected people reference to stay unset")
	}

	items, err := f.svc.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(items))
	}
	if items[0].PlanetID == nil || *items[0].PlanetID != 1 {
		t.Fatalf("expected listed favorite to reference planet 1, got %+v", items[0])
	}
}

func TestFavoriteService_ListMixesTargetKinds(t *testing.T) {
	ctx := context.Background()
	f := newFavoriteFixture()

	if _, err := f.svc.AddPlanet(ctx, 1, 1); err != nil {
		t.Fatalf("AddPlanet returned error: %v", err)
	}
	if _, err := f.svc.AddPeople(ctx, 1, 1); err != nil {
		t.Fatalf("AddPeople returned error: %v", err)
	}

	items, err := f.svc.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(items))
	}
	if items[0].Kind() != domain.FavoriteKindPlanet || items[1].Kind() != domain.FavoriteKindPeople {
		t.Fatalf("unexpected kinds: %q, %q", items[0].Kind(), items[1].Kind())
	}
}

func TestFavoriteService_AddRejectsUnknownReferences(t *testing.T) {
	ctx := context.Background()
	f := newFavoriteFixture()

	if _, err := f.svc.AddPlanet(ctx, 999, 1); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := f.svc.AddPlanet(ctx, 1, 999); !errors.Is(err, ErrPlanetNotFound) {
		t.Fatalf("expected ErrPlanetNotFound, got %v", err)
	}
	if _, err := f.svc.AddPeople(ctx, 1, 999); !errors.Is(err, ErrPeopleNotFound) {
		t.Fatalf("expected ErrPeopleNotFound, got %v", err)
	}
	if _, err := f.svc.AddPeople(ctx, 0, 1); !errors.Is(err, ErrInvalidFavorite) {
		t.Fatalf("expected ErrInvalidFavorite for missing user, got %v", err)
	}
	if len(f.favorites.rows) != 0 {
		t.Fatalf("expected no rows to be persisted, got %d", len(f.favorites.rows))
	}
}

func TestFavoriteService_AddMapsConstraintViolations(t *testing.T) {
	ctx := context.Background()

	f := newFavoriteFixture()
	f.favorites.addErr = &pgconn.PgError{Code: "23503"}
	if _, err := f.svc.AddPeople(ctx, 1, 1); !errors.Is(err, ErrPeopleNotFound) {
		t.Fatalf("expected ErrPeopleNotFound for foreign key violation, got %v", err)
	}

	f = newFavoriteFixture()
	f.favorites.addErr = &pgconn.PgError{Code: "23514"}
	_, err := f.svc.AddPlanet(ctx, 1, 1)
	if !errors.Is(err, ErrInvalidFavorite) || !errors.Is(err, domain.ErrFavoriteTarget) {
		t.Fatalf("expected invalid favorite for check violation, got %v", err)
	}
}

func TestFavoriteService_RemoveMissingLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFavoriteFixture()

	if _, err := f.svc.AddPlanet(ctx, 1, 1); err != nil {
		t.Fatalf("AddPlanet returned error: %v", err)
	}

	if err := f.svc.RemovePlanet(ctx, 999, 1); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
	// same id but the other target kind must not match
	if err := f.svc.RemovePeople(ctx, 1, 1); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound for other kind, got %v", err)
	}
	if len(f.favorites.rows) != 1 {
		t.Fatalf("expected 1 row to remain, got %d", len(f.favorites.rows))
	}

	if err := f.svc.RemovePlanet(ctx, 1, 1); err != nil {
		t.Fatalf("RemovePlanet returned error: %v", err)
	}
	if len(f.favorites.rows) != 0 {
		t.Fatalf("expected favorite to be removed")
	}
}

func TestFavoriteService_RemoveDeletesFirstDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFavoriteFixture()

	for i := 0; i < 2; i++ {
		if _, err := f.svc.AddPeople(ctx, 1, 1); err != nil {
			t.Fatalf("AddPeople returned error: %v", err)
		}
	}
	if err := f.svc.RemovePeople(ctx, 1, 1); err != nil {
		t.Fatalf("RemovePeople returned error: %v", err)
	}
	if len(f.favorites.rows) != 1 || f.favorites.rows[0].ID != 2 {
		t.Fatalf("expected only the newer duplicate to remain, got %+v", f.favorites.rows)
	}
}

func TestFavoriteService_ListUnknownUser(t *testing.T) {
	f := newFavoriteFixture()

	if _, err := f.svc.ListByUser(context.Background(), 42); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	boom := errors.New("connection reset")
	f.users.findErr = boom
	if _, err := f.svc.ListByUser(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected repository error to pass through, got %v", err)
	}
}
