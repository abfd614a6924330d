package skill

import "time"

// Category is the closed set of skill groupings.
type Category string

const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
)

func (c Category) Valid() bool {
	return c == CategoryFrontend || c == CategoryBackend
}

// Skill is a single proficiency entry. Percentage is intended to be 0-100 but
// only presence is enforced. Skills are immutable once created: the only
// operations are create, list and delete.
type Skill struct {
	ID         int64     `json:"id" bson:"_id"`
	Name       string    `json:"name" bson:"name"`
	Level      string    `json:"level" bson:"level"`
	Percentage int       `json:"percentage" bson:"percentage"`
	Category   Category  `json:"category" bson:"category"`
	CreatedAt  time.Time `json:"-" bson:"createdAt"`
}
