package repository

import (
	"context"

	"github.com/devfolio/api/internal/profile"
)

// ProfileRepository persists the singleton profile. The interface carries no
// id and no list operation: a second instance is unrepresentable through it.
// Get returns nil (not an error) when the profile was never written.
type ProfileRepository interface {
	Get(ctx context.Context) (*profile.Profile, error)
	Put(ctx context.Context, p *profile.Profile) error
}
