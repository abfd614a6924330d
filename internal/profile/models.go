package profile

import "time"

// Profile is the singleton owner profile. Exactly one instance exists
// system-wide; it is materialized on first write and read as empty defaults
// before that. ProfileImage and ResumeURL are asset references.
type Profile struct {
	Name             string    `json:"name" bson:"name"`
	Title            string    `json:"title" bson:"title"`
	HeroBio          string    `json:"heroBio" bson:"heroBio"`
	AboutBio         string    `json:"aboutBio" bson:"aboutBio"`
	ProfileImage     string    `json:"profileImage" bson:"profileImage"`
	ResumeURL        string    `json:"resumeUrl" bson:"resumeUrl"`
	Email            string    `json:"email" bson:"email"`
	LinkedIn         string    `json:"linkedin" bson:"linkedin"`
	GitHub           string    `json:"github" bson:"github"`
	Twitter          string    `json:"twitter" bson:"twitter"`
	Facebook         string    `json:"facebook" bson:"facebook"`
	ExperienceYears  string    `json:"experienceYears" bson:"experienceYears"`
	EducationSummary string    `json:"educationSummary" bson:"educationSummary"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
}
