package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devfolio/api/internal/skill"
	"github.com/devfolio/api/internal/skill/repository"
)

// ErrValidation marks rejected input; handlers map it to 400.
var ErrValidation = errors.New("validation failed")

// CreateInput carries a new skill. Percentage is a pointer so an omitted
// value can be told apart from an explicit zero.
type CreateInput struct {
	Name       string
	Level      string
	Percentage *int
	Category   string
}

// Service implements skill operations. Skills have no update: only create,
// list and delete exist.
type Service struct {
	repo repository.SkillRepository
	now  func() time.Time
}

func NewService(r repository.SkillRepository) *Service {
	return &Service{repo: r, now: time.Now}
}

// Create validates that all four fields are supplied together and that the
// category is one of the two known values, then persists the skill.
func (s *Service) Create(ctx context.Context, in CreateInput) (*skill.Skill, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Level) == "" ||
		in.Percentage == nil || strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: name, level, percentage and category are required", ErrValidation)
	}
	cat := skill.Category(in.Category)
	if !cat.Valid() {
		return nil, fmt.Errorf("%w: category must be %q or %q", ErrValidation, skill.CategoryFrontend, skill.CategoryBackend)
	}

	sk := &skill.Skill{
		Name:       in.Name,
		Level:      in.Level,
		Percentage: *in.Percentage,
		Category:   cat,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

// List returns skills sorted by category ascending, then percentage descending.
func (s *Service) List(ctx context.Context) ([]skill.Skill, error) {
	return s.repo.List(ctx)
}

// Delete removes a skill, reporting not found when no row matches. Same
// contract as project deletion.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
