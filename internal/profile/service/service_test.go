package service

import (
	"context"
	"testing"

	"github.com/devfolio/api/internal/profile/repository"
)

func strp(s string) *string { return &s }

func TestGet_EmptyDefaultsBeforeFirstWrite(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())

	p, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "" || p.Email != "" || !p.UpdatedAt.IsZero() {
		t.Fatalf("expected empty defaults, got %+v", p)
	}
}

func TestUpdate_MaterializesSingleton(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	got, err := svc.Update(ctx, UpdateInput{Name: strp("Alex"), Email: strp("alex@example.com")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Alex" || got.Email != "alex@example.com" {
		t.Fatalf("fields not applied: %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatalf("updatedAt must be set on write")
	}

	again, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Name != "Alex" {
		t.Fatalf("write did not persist: %+v", again)
	}
}

func TestUpdate_OmittedFieldsRetainValues(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Update(ctx, UpdateInput{Name: strp("Alex"), Title: strp("Engineer")}); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	got, err := svc.Update(ctx, UpdateInput{Title: strp("Staff Engineer")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Alex" {
		t.Fatalf("omitted name must retain prior value, got %q", got.Name)
	}
	if got.Title != "Staff Engineer" {
		t.Fatalf("supplied title not applied: %q", got.Title)
	}
}

func TestUpdate_ExplicitEmptyClears(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Update(ctx, UpdateInput{Twitter: strp("https://twitter.com/alex")}); err != nil {
		t.Fatalf("seed update: %v", err)
	}
	got, err := svc.Update(ctx, UpdateInput{Twitter: strp("")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Twitter != "" {
		t.Fatalf("explicit empty must clear, got %q", got.Twitter)
	}
}
