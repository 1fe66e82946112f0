package users

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepoUpsertPreservesCreatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first := User{ID: "google:abc", Email: "a@example.com", FullName: "Ada"}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	stored, err := repo.GetByID(ctx, "google:abc")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	createdAt := stored.CreatedAt
	if createdAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	update := User{ID: "google:abc", Email: "a@new.example.com", FullName: "Ada L"}
	if err := repo.Upsert(ctx, update); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	stored, err = repo.GetByID(ctx, "google:abc")
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if stored.Email != "a@new.example.com" {
		t.Fatalf("expected updated email, got %q", stored.Email)
	}
	if !stored.CreatedAt.Equal(createdAt) {
		t.Fatalf("CreatedAt changed on upsert: %v vs %v", stored.CreatedAt, createdAt)
	}
	if stored.UpdatedAt.Before(createdAt) {
		t.Fatalf("UpdatedAt %v precedes CreatedAt %v", stored.UpdatedAt, createdAt)
	}
}

func TestMemoryRepoGetByIDUnknown(t *testing.T) {
	repo := NewMemoryRepo()
	_, err := repo.GetByID(context.Background(), "google:missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
