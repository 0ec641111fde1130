package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/ports"
)

type PlanetRepository struct {
	db *sqlx.DB
}

func NewPlanetRepo(db *sqlx.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) Create(ctx context.Context, planet domain.Planet) (*domain.Planet, error) {
	const query = `
		INSERT INTO planet (name, description, population)
		VALUES (:name, :description, :population)
		RETURNING id, name, description, population
	`

	rows, err := r.db.NamedQueryContext(ctx, query, planet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("insert planet: no row returned")
	}
	var created domain.Planet
	if err := rows.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PlanetRepository) Update(ctx context.Context, id int64, fields domain.PlanetFields) (*domain.Planet, error) {
	if fields.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	idx := 1

	if fields.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", idx))
		args = append(args, *fields.Name)
		idx++
	}
	if fields.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", idx))
		args = append(args, *fields.Description)
		idx++
	}
	if fields.Population != nil {
		setParts = append(setParts, fmt.Sprintf("population = $%d", idx))
		args = append(args, *fields.Population)
		idx++
	}

	query := fmt.Sprintf(`
		UPDATE planet
		SET %s
		WHERE id = $%d
		RETURNING id, name, description, population
	`, strings.Join(setParts, ", "), idx)
	args = append(args, id)

	var planet domain.Planet
	if err := r.db.GetContext(ctx, &planet, query, args...); err != nil {
		return nil, err
	}
	return &planet, nil
}

func (r *PlanetRepository) FindByID(ctx context.Context, id int64) (*domain.Planet, error) {
	const query = `
		SELECT id, name, description, population
		FROM planet
		WHERE id = $1
	`
	var planet domain.Planet
	if err := r.db.GetContext(ctx, &planet, query, id); err != nil {
		return nil, err
	}
	return &planet, nil
}

func (r *PlanetRepository) List(ctx context.Context) ([]domain.Planet, error) {
	const query = `
		SELECT id, name, description, population
		FROM planet
		ORDER BY id
	`
	planets := make([]domain.Planet, 0)
	if err := r.db.SelectContext(ctx, &planets, query); err != nil {
		return nil, err
	}
	return planets, nil
}

var _ ports.PlanetRepository = (*PlanetRepository)(nil)
