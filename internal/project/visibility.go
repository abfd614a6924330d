package project

import (
	"sort"
	"time"
)

// Visibility policy: which projects a caller may see, and the publish flip.

// FilterForPublic returns only published projects, newest first.
func FilterForPublic(ps []Project) []Project {
	out := make([]Project, 0, len(ps))
	for _, p := range ps {
		if p.Published {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)
	return out
}

// FilterForOwner returns every project regardless of publish state, newest first.
func FilterForOwner(ps []Project) []Project {
	out := make([]Project, len(ps))
	copy(out, ps)
	sortNewestFirst(out)
	return out
}

// Toggle flips the publish flag and refreshes updatedAt, leaving every other
// field untouched. This is independent of a full field update.
func Toggle(p Project, now time.Time) Project {
	p.Published = !p.Published
	p.UpdatedAt = now
	return p
}

func sortNewestFirst(ps []Project) {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].ID > ps[j].ID
		}
		return ps[i].CreatedAt.After(ps[j].CreatedAt)
	})
}
