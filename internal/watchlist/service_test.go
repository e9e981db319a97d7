package watchlist

import (
	"context"
	"errors"
	"testing"

	"github.com/dumovie/dumovie/internal/catalog"
)

func newTestService() *Service {
	catalogSvc := catalog.NewService(catalog.StaticClient{}, "https://img.example")
	return NewService(NewMemoryRepository(), catalogSvc)
}

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	entry, err := svc.Add(ctx, "USR001", "101")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if entry.Title != "Static Drama" {
		t.Fatalf("expected catalog title, got %q", entry.Title)
	}
	if entry.PosterPath != "https://img.example/drama.jpg" {
		t.Fatalf("expected absolute poster url, got %q", entry.PosterPath)
	}

	entries, err := svc.List(ctx, "USR001")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].MovieID != "101" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestAddDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.Add(ctx, "USR001", "101"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, "USR001", "101"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected duplicate, got %v", err)
	}

	// Same movie for another user is fine.
	if _, err := svc.Add(ctx, "USR002", "101"); err != nil {
		t.Fatalf("other user add: %v", err)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.Add(ctx, "USR001", "101"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Remove(ctx, "USR001", "101"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, "USR001", "101"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
