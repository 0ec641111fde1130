package domain

import "errors"

type FavoriteKind string

const (
	FavoriteKindPlanet FavoriteKind = "planet"
	FavoriteKindPeople FavoriteKind = "people"
)

var ErrFavoriteTarget = errors.New("favorite must reference exactly one of planet or people")

type Favorite struct {
	ID       int64  `db:"id" json:"id"`
	UserID   int64  `db:"user_id" json:"user_id"`
	PlanetID *int64 `db:"planet_id" json:"planet_id"`
	PeopleID *int64 `db:"people_id" json:"people_id"`
}

// FavoriteListItem is a favorite row joined with the display name of its
// target.
type FavoriteListItem struct {
	Favorite
	PlanetName *string `db:"planet_name" json:"planet_name,omitempty"`
	PeopleName *string `db:"people_name" json:"people_name,omitempty"`
}

func NewPlanetFavorite(userID, planetID int64) Favorite {
	return Favorite{UserID: userID, PlanetID: &planetID}
}

func NewPeopleFavorite(userID, peopleID int64) Favorite {
	return Favorite{UserID: userID, PeopleID: &peopleID}
}

func (f Favorite) Kind() FavoriteKind {
	if f.PlanetID != nil {
		return FavoriteKindPlanet
	}
	return FavoriteKindPeople
}

// TargetID returns the id of whichever target the favorite references.
func (f Favorite) TargetID() int64 {
	switch {
	case f.PlanetID != nil:
		return *f.PlanetID
	case f.PeopleID != nil:
		return *f.PeopleID
	default:
		return 0
	}
}

func (f Favorite) Validate() error {
	if f.UserID <= 0 {
		return errors.New("favorite requires a user")
	}
	if (f.PlanetID == nil) == (f.PeopleID == nil) {
		return ErrFavoriteTarget
	}
	return nil
}
