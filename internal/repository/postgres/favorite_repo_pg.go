package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/ports"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
	const query = `
		INSERT INTO favorite (user_id, planet_id, people_id)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, planet_id, people_id
	`

	var created domain.Favorite
	if err := r.db.GetContext(ctx, &created, query, favorite.UserID, nullInt64(favorite.PlanetID), nullInt64(favorite.PeopleID)); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, favorite domain.Favorite) error {
	const (
		byPlanet = `
			DELETE FROM favorite
			WHERE id = (
				SELECT id FROM favorite
				WHERE user_id = $1 AND planet_id = $2
				ORDER BY id
				LIMIT 1
			)
		`
		byPeople = `
			DELETE FROM favorite
			WHERE id = (
				SELECT id FROM favorite
				WHERE user_id = $1 AND people_id = $2
				ORDER BY id
				LIMIT 1
			)
		`
	)

	query := byPeople
	if favorite.Kind() == domain.FavoriteKindPlanet {
		query = byPlanet
	}

	result, err := r.db.ExecContext(ctx, query, favorite.UserID, favorite.TargetID())
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteListItem, error) {
	const query = `
		SELECT
			f.id,
			f.user_id,
			f.planet_id,
			f.people_id,
			pl.name AS planet_name,
			pe.name AS people_name
		FROM favorite f
		LEFT JOIN planet pl ON pl.id = f.planet_id
		LEFT JOIN people pe ON pe.id = f.people_id
		WHERE f.user_id = $1
		ORDER BY f.id
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.FavoriteListItem, 0)
	for rows.Next() {
		var item domain.FavoriteListItem
		if err := rows.StructScan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func nullInt64(ptr *int64) sql.NullInt64 {
	if ptr == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *ptr, Valid: true}
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
