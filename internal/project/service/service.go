package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devfolio/api/internal/assets"
	"github.com/devfolio/api/internal/project"
	"github.com/devfolio/api/internal/project/repository"
)

// ErrValidation marks rejected input; handlers map it to 400.
var ErrValidation = errors.New("validation failed")

// CreateInput carries the fields for a new project. Images are the already
// uploaded asset references, in upload order.
type CreateInput struct {
	Title            string
	ShortDescription string
	FullDescription  string
	TechStack        []string
	RepoURL          string
	LiveURL          string
	Images           []string
	Published        bool
}

// UpdateInput distinguishes "not supplied" (nil) from "set to empty" for every
// scalar field. Lists are replaced wholesale when non-nil. KeptImages nil
// means keep all currently stored references.
type UpdateInput struct {
	Title            *string
	ShortDescription *string
	FullDescription  *string
	TechStack        []string
	RepoURL          *string
	LiveURL          *string
	KeptImages       []string
	NewImages        []string
	Published        *bool
}

// Service implements the project content operations on top of a repository.
type Service struct {
	repo repository.ProjectRepository
	now  func() time.Time
}

func NewService(r repository.ProjectRepository) *Service {
	return &Service{repo: r, now: time.Now}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*project.Project, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	now := s.now().UTC()
	p := &project.Project{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		FullDescription:  in.FullDescription,
		TechStack:        normalizeStack(in.TechStack),
		RepoURL:          in.RepoURL,
		LiveURL:          in.LiveURL,
		Images:           assets.MergeOnCreate(in.Images),
		Published:        in.Published,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns one project. Without includeDrafts an unpublished project is
// reported as not found, exactly like an absent one.
func (s *Service) Get(ctx context.Context, id int64, includeDrafts bool) (*project.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !includeDrafts && !p.Published {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

// List returns projects through the visibility policy: public callers see
// published only, the owner sees everything. Both newest first.
func (s *Service) List(ctx context.Context, includeDrafts bool) ([]project.Project, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeDrafts {
		return project.FilterForOwner(all), nil
	}
	return project.FilterForPublic(all), nil
}

// Update reads the current row, merges the supplied fields in memory and
// writes the full row back. There is no version token, so two concurrent
// updates race and the last completed write wins the whole row.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*project.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Title is required, so a blank submission falls back to the stored value
	// rather than clearing it.
	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		p.Title = *in.Title
	}
	if in.ShortDescription != nil {
		p.ShortDescription = *in.ShortDescription
	}
	if in.FullDescription != nil {
		p.FullDescription = *in.FullDescription
	}
	if in.TechStack != nil {
		p.TechStack = normalizeStack(in.TechStack)
	}
	if in.RepoURL != nil {
		p.RepoURL = *in.RepoURL
	}
	if in.LiveURL != nil {
		p.LiveURL = *in.LiveURL
	}
	if in.Published != nil {
		p.Published = *in.Published
	}

	kept := in.KeptImages
	if kept == nil {
		kept = p.Images
	}
	p.Images = assets.MergeOnUpdate(kept, in.NewImages)

	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetVisibility sets the publish flag explicitly, refreshing updatedAt and
// leaving all other fields unchanged.
func (s *Service) SetVisibility(ctx context.Context, id int64, published bool) (*project.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Published = published
	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ToggleVisibility flips the publish flag via the visibility policy.
func (s *Service) ToggleVisibility(ctx context.Context, id int64) (*project.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	flipped := project.Toggle(*p, s.now().UTC())
	if err := s.repo.Update(ctx, &flipped); err != nil {
		return nil, err
	}
	return &flipped, nil
}

// Delete removes the project, reporting not found when no row matches.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// normalizeStack trims entries and drops empties while keeping order and
// duplicates. Never returns nil so the field serializes as [].
func normalizeStack(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
