package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopstack/commerce-system/internal/core/domain"
)

func TestCatalogClient_Get_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/p-1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"p-1","name":"Widget","price":9.99}`))
	}))
	defer srv.Close()

	client := NewCatalogClient(srv.URL, time.Second)
	product, err := client.Get(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if product.ID != "p-1" || product.Name != "Widget" || product.Price != 9.99 {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestCatalogClient_Get_NonSuccessStatusPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Product not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewCatalogClient(srv.URL, time.Second)
	_, err := client.Get(context.Background(), "missing")

	var statusErr *domain.UpstreamStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected propagated 404, got %v", err)
	}
}

func TestCatalogClient_Get_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening any more

	client := NewCatalogClient(srv.URL, time.Second)
	if _, err := client.Get(context.Background(), "p-1"); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestCatalogClient_Get_TimeoutMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewCatalogClient(srv.URL, 20*time.Millisecond)
	if _, err := client.Get(context.Background(), "p-1"); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable on timeout, got %v", err)
	}
}
