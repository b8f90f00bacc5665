package gallery

import (
	"context"
	"testing"
	"time"

	"github.com/rangeviz/rangeviz/pkg/errors"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	c := &Chart{
		ID:        NewID(),
		Type:      "line",
		Dialect:   "vega-lite",
		Spec:      map[string]any{"mark": "line"},
		SpecHash:  "abc",
		Format:    "png",
		Image:     []byte("img"),
		CreatedAt: time.Now(),
	}
	if err := s.Put(ctx, c); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Type != "line" || got.SpecHash != "abc" {
		t.Errorf("unexpected record: %+v", got)
	}

	// Returned records are copies.
	got.Type = "mutated"
	again, _ := s.Get(ctx, c.ID)
	if again.Type != "line" {
		t.Error("Get should return an isolated copy")
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestMemoryStorePutRequiresID(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Put(context.Background(), &Chart{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now()
	for i := 0; i < 3; i++ {
		err := s.Put(ctx, &Chart{
			ID:        NewID(),
			Type:      "bar",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	charts, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(charts) != 3 {
		t.Fatalf("expected 3 records, got %d", len(charts))
	}
	for i := 1; i < len(charts); i++ {
		if charts[i].CreatedAt.After(charts[i-1].CreatedAt) {
			t.Error("records not sorted newest first")
		}
	}

	limited, err := s.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("limit not applied: got %d records", len(limited))
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	c := &Chart{ID: NewID(), Type: "pie", CreatedAt: time.Now()}
	if err := s.Put(ctx, c); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, c.ID); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("second delete should be NOT_FOUND, got %v", err)
	}
}
