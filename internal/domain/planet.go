package domain

type Planet struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Population  int64  `db:"population" json:"population"`
}

// PlanetFields carries the attributes of a planet write. A nil field is left
// untouched by an update.
type PlanetFields struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Population  *int64  `json:"population,omitempty"`
}

func (f PlanetFields) IsEmpty() bool {
	return f.Name == nil && f.Description == nil && f.Population == nil
}

func (f PlanetFields) Apply(p *Planet) {
	if f.Name != nil {
		p.Name = *f.Name
	}
	if f.Description != nil {
		p.Description = *f.Description
	}
	if f.Population != nil {
		p.Population = *f.Population
	}
}
