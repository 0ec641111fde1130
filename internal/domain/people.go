package domain

type People struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	HairColor string `db:"hair_color" json:"hair_color"`
	Gender    string `db:"gender" json:"gender"`
}

// PeopleFields carries the attributes of a people write. A nil field is left
// untouched by an update.
type PeopleFields struct {
	Name      *string `json:"name,omitempty"`
	HairColor *string `json:"hair_color,omitempty"`
	Gender    *string `json:"gender,omitempty"`
}

func (f PeopleFields) IsEmpty() bool {
	return f.Name == nil && f.HairColor == nil && f.Gender == nil
}

func (f PeopleFields) Apply(p *People) {
	if f.Name != nil {
		p.Name = *f.Name
	}
	if f.HairColor != nil {
		p.HairColor = *f.HairColor
	}
	if f.Gender != nil {
		p.Gender = *f.Gender
	}
}
