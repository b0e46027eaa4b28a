// Package httpclient implements the order service's outbound call to the
// catalog service's public read endpoint.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopstack/commerce-system/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// CatalogClient reads products over HTTP. It satisfies ports.ProductReader.
type CatalogClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogClient builds a client for the catalog service at baseURL
// (e.g. http://catalog-service:5001). The timeout bounds the whole request;
// hitting it maps to domain.ErrUpstreamUnavailable rather than hanging the
// order-creation path.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &CatalogClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *CatalogClient) Get(ctx context.Context, id string) (*domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return &product, nil
}
