package service

import (
	"context"
	"fmt"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/ports"
)

type PeopleService struct {
	people ports.PeopleRepository
}

func NewPeopleService(peopleRepo ports.PeopleRepository) *PeopleService {
	return &PeopleService{people: peopleRepo}
}

func (s *PeopleService) List(ctx context.Context) ([]domain.People, error) {
	return s.people.List(ctx)
}

func (s *PeopleService) Get(ctx context.Context, id int64) (*domain.People, error) {
	person, err := s.people.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPeopleNotFound
		}
		return nil, err
	}
	return person, nil
}

func (s *PeopleService) Create(ctx context.Context, fields domain.PeopleFields) (*domain.People, error) {
	switch {
	case fields.Name == nil:
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	case fields.HairColor == nil:
		return nil, fmt.Errorf("%w: hair_color is required", ErrValidation)
	case fields.Gender == nil:
		return nil, fmt.Errorf("%w: gender is required", ErrValidation)
	}

	var person domain.People
	fields.Apply(&person)
	return s.people.Create(ctx, person)
}

func (s *PeopleService) Update(ctx context.Context, id int64, fields domain.PeopleFields) (*domain.People, error) {
	person, err := s.people.Update(ctx, id, fields)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPeopleNotFound
		}
		return nil, err
	}
	return person, nil
}
