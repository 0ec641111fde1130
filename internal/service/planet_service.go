package service

import (
	"context"
	"fmt"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
	"github.com/njprem/StarWars_API_BackEnd/internal/repository/ports"
)

type PlanetService struct {
	planets ports.PlanetRepository
}

func NewPlanetService(planetRepo ports.PlanetRepository) *PlanetService {
	return &PlanetService{planets: planetRepo}
}

func (s *PlanetService) List(ctx context.Context) ([]domain.Planet, error) {
	return s.planets.List(ctx)
}

func (s *PlanetService) Get(ctx context.Context, id int64) (*domain.Planet, error) {
	planet, err := s.planets.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlanetNotFound
		}
		return nil, err
	}
	return planet, nil
}

// Create requires every field to be supplied.
func (s *PlanetService) Create(ctx context.Context, fields domain.PlanetFields) (*domain.Planet, error) {
	switch {
	case fields.Name == nil:
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	case fields.Description == nil:
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	case fields.Population == nil:
		return nil, fmt.Errorf("%w: population is required", ErrValidation)
	}

	var planet domain.Planet
	fields.Apply(&planet)
	return s.planets.Create(ctx, planet)
}

// Update overwrites only the supplied fields and returns the stored row.
func (s *PlanetService) Update(ctx context.Context, id int64, fields domain.PlanetFields) (*domain.Planet, error) {
	planet, err := s.planets.Update(ctx, id, fields)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlanetNotFound
		}
		return nil, err
	}
	return planet, nil
}
