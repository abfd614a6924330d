package service

import (
	"context"
	"time"

	"github.com/devfolio/api/internal/profile"
	"github.com/devfolio/api/internal/profile/repository"
)

// UpdateInput carries the profile fields for a full-merge update. Nil means
// "leave unchanged"; a non-nil empty string deliberately clears the field.
type UpdateInput struct {
	Name             *string
	Title            *string
	HeroBio          *string
	AboutBio         *string
	ProfileImage     *string
	ResumeURL        *string
	Email            *string
	LinkedIn         *string
	GitHub           *string
	Twitter          *string
	Facebook         *string
	ExperienceYears  *string
	EducationSummary *string
}

// Service implements the singleton profile operations. The profile is never
// created or deleted explicitly: the first update materializes it and reads
// before that return empty defaults.
type Service struct {
	repo repository.ProfileRepository
	now  func() time.Time
}

func NewService(r repository.ProfileRepository) *Service {
	return &Service{repo: r, now: time.Now}
}

// Get returns the profile, or zero-valued defaults when it was never written.
func (s *Service) Get(ctx context.Context) (*profile.Profile, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &profile.Profile{}, nil
	}
	return p, nil
}

// Update merges the supplied fields over the stored profile and writes the
// whole row back. Same read-merge-write shape as projects: no version check,
// last writer wins.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*profile.Profile, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&p.Name, in.Name)
	apply(&p.Title, in.Title)
	apply(&p.HeroBio, in.HeroBio)
	apply(&p.AboutBio, in.AboutBio)
	apply(&p.ProfileImage, in.ProfileImage)
	apply(&p.ResumeURL, in.ResumeURL)
	apply(&p.Email, in.Email)
	apply(&p.LinkedIn, in.LinkedIn)
	apply(&p.GitHub, in.GitHub)
	apply(&p.Twitter, in.Twitter)
	apply(&p.Facebook, in.Facebook)
	apply(&p.ExperienceYears, in.ExperienceYears)
	apply(&p.EducationSummary, in.EducationSummary)

	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
