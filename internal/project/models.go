package project

import "time"

// Project is the persistent portfolio project model. Images holds ordered
// asset references; the first element is the canonical thumbnail and the
// order is exactly what the asset merge produced. TechStack order is
// preserved as entered and duplicates are allowed.
type Project struct {
	ID               int64     `json:"id" bson:"_id"`
	Title            string    `json:"title" bson:"title"`
	ShortDescription string    `json:"shortDescription" bson:"shortDescription"`
	FullDescription  string    `json:"fullDescription" bson:"fullDescription"`
	TechStack        []string  `json:"techStack" bson:"techStack"`
	RepoURL          string    `json:"repoUrl" bson:"repoUrl"`
	LiveURL          string    `json:"liveUrl" bson:"liveUrl"`
	Images           []string  `json:"images" bson:"images"`
	Published        bool      `json:"published" bson:"published"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
}
