package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeStore is an in-memory Store with per-call failure injection.
type fakeStore struct {
	data      map[string]string
	getErr    error
	setErr    error
	deleteErr error
	deletes   []string
	sets      []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return "", ErrMiss
	}
	return v, nil
}

func (s *fakeStore) SetWithTTL(_ context.Context, key, value string, _ time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sets = append(s.sets, key)
	s.data[key] = value
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.deletes = append(s.deletes, key)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.data, key)
	return nil
}

type payload struct {
	Name string `json:"name"`
}

func TestReadThrough_MissPopulatesAndHits(t *testing.T) {
	store := newFakeStore()
	a := NewAccessor(store, zerolog.Nop())

	loads := 0
	loader := func(context.Context) ([]payload, error) {
		loads++
		return []payload{{Name: "widget"}}, nil
	}

	got, err := ReadThrough(context.Background(), a, "products", 30*time.Second, loader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 || got[0].Name != "widget" {
		t.Fatalf("unexpected value: %+v", got)
	}
	if loads != 1 {
		t.Fatalf("expected 1 load, got %d", loads)
	}

	// Second read must be served from cache without touching the loader.
	got, err = ReadThrough(context.Background(), a, "products", 30*time.Second, loader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if loads != 1 {
		t.Fatalf("expected cache hit, loader called %d times", loads)
	}
	if got[0].Name != "widget" {
		t.Fatalf("unexpected cached value: %+v", got)
	}
}

func TestReadThrough_CorruptPayloadInvalidatesAndFallsBack(t *testing.T) {
	store := newFakeStore()
	store.data["products"] = "{not json"
	a := NewAccessor(store, zerolog.Nop())

	got, err := ReadThrough(context.Background(), a, "products", time.Second, func(context.Context) ([]payload, error) {
		return []payload{{Name: "from-store"}}, nil
	})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got[0].Name != "from-store" {
		t.Fatalf("expected store fallback, got %+v", got)
	}
	if len(store.deletes) == 0 || store.deletes[0] != "products" {
		t.Fatalf("corrupt entry was not invalidated: %v", store.deletes)
	}
}

func TestReadThrough_TierUnavailableDegradesToLoader(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection refused")
	store.setErr = errors.New("connection refused")
	a := NewAccessor(store, zerolog.Nop())

	got, err := ReadThrough(context.Background(), a, "orders:u1", time.Second, func(context.Context) ([]payload, error) {
		return []payload{{Name: "order"}}, nil
	})
	if err != nil {
		t.Fatalf("cache failure must not fail the read: %v", err)
	}
	if got[0].Name != "order" {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestReadThrough_LoaderErrorPropagates(t *testing.T) {
	a := NewAccessor(newFakeStore(), zerolog.Nop())
	wantErr := errors.New("store down")

	_, err := ReadThrough(context.Background(), a, "products", time.Second, func(context.Context) ([]payload, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestReadThrough_NilStoreAlwaysLoads(t *testing.T) {
	a := NewAccessor(nil, zerolog.Nop())
	loads := 0
	loader := func(context.Context) ([]payload, error) {
		loads++
		return nil, nil
	}

	for i := 0; i < 3; i++ {
		if _, err := ReadThrough(context.Background(), a, "products", time.Second, loader); err != nil {
			t.Fatalf("read: %v", err)
		}
	}
	if loads != 3 {
		t.Fatalf("expected 3 loads with caching disabled, got %d", loads)
	}
	if a.Enabled() {
		t.Fatalf("nil store must report disabled")
	}
}

func TestInvalidate_SwallowsFailure(t *testing.T) {
	store := newFakeStore()
	store.deleteErr = errors.New("connection refused")
	a := NewAccessor(store, zerolog.Nop())

	// Must not panic or surface the error in any way.
	a.Invalidate(context.Background(), "orders:u1")
	if len(store.deletes) != 1 {
		t.Fatalf("delete was not attempted")
	}
}

func TestInvalidate_RemovesEntry(t *testing.T) {
	store := newFakeStore()
	a := NewAccessor(store, zerolog.Nop())

	if _, err := ReadThrough(context.Background(), a, "products", time.Minute, func(context.Context) ([]payload, error) {
		return []payload{{Name: "stale"}}, nil
	}); err != nil {
		t.Fatalf("seed read: %v", err)
	}

	a.Invalidate(context.Background(), "products")

	loads := 0
	got, err := ReadThrough(context.Background(), a, "products", time.Minute, func(context.Context) ([]payload, error) {
		loads++
		return []payload{{Name: "fresh"}}, nil
	})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if loads != 1 || got[0].Name != "fresh" {
		t.Fatalf("read after invalidation must miss: loads=%d got=%+v", loads, got)
	}
}
