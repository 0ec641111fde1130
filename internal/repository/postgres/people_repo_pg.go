package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/ports"
)

type PeopleRepository struct {
	db *sqlx.DB
}

func NewPeopleRepo(db *sqlx.DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

func (r *PeopleRepository) Create(ctx context.Context, people domain.People) (*domain.People, error) {
	const query = `
		INSERT INTO people (name, hair_color, gender)
		VALUES ($1, $2, $3)
		RETURNING id, name, hair_color, gender
	`
	row := r.db.QueryRowxContext(ctx, query, people.Name, people.HairColor, people.Gender)
	var created domain.People
	if err := row.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PeopleRepository) Update(ctx context.Context, id int64, fields domain.PeopleFields) (*domain.People, error) {
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
	if fields.HairColor != nil {
		setParts = append(setParts, fmt.Sprintf("hair_color = $%d", idx))
		args = append(args, *fields.HairColor)
		idx++
	}
	if fields.Gender != nil {
		setParts = append(setParts, fmt.Sprintf("gender = $%d", idx))
		args = append(args, *fields.Gender)
		idx++
	}

	query := fmt.Sprintf(`
		UPDATE people
		SET %s
		WHERE id = $%d
		RETURNING id, name, hair_color, gender
	`, strings.Join(setParts, ", "), idx)
	args = append(args, id)

	var people domain.People
	if err := r.db.GetContext(ctx, &people, query, args...); err != nil {
		return nil, err
	}
	return &people, nil
}

func (r *PeopleRepository) FindByID(ctx context.Context, id int64) (*domain.People, error) {
	const query = `
		SELECT id, name, hair_color, gender
		FROM people
		WHERE id = $1
	`
	var people domain.People
	if err := r.db.GetContext(ctx, &people, query, id); err != nil {
		return nil, err
	}
	return &people, nil
}

func (r *PeopleRepository) List(ctx context.Context) ([]domain.People, error) {
	const query = `
		SELECT id, name, hair_color, gender
		FROM people
		ORDER BY id
	`
	items := make([]domain.People, 0)
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

var _ ports.PeopleRepository = (*PeopleRepository)(nil)
