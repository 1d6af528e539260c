package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"boutique-app/internal/product"
)

// RemoteBackend talks to the catalog API:
//
//	GET    /products
//	POST   /products
//	DELETE /products/{id}
//	PATCH  /orders/{id}/confirm
//
// Any non-2xx response is an error. There is no retry; deadlines come from
// the caller's context or the injected client.
type RemoteBackend struct {
	baseURL string
	client  *http.Client
}

func NewRemoteBackend(baseURL string, client *http.Client) *RemoteBackend {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteBackend{baseURL: baseURL, client: client}
}

func (b *RemoteBackend) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("remote: encode body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("remote: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("remote: %s %s: %w: %d", method, path, ErrUnexpectedStatus, resp.StatusCode)
	}
	return resp, nil
}

func (b *RemoteBackend) GetProducts(ctx context.Context) ([]product.Product, error) {
	resp, err := b.do(ctx, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var products []product.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("remote: decode products: %w", err)
	}
	return products, nil
}

func (b *RemoteBackend) AddProduct(ctx context.Context, p product.Product) error {
	resp, err := b.do(ctx, http.MethodPost, "/products", p)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (b *RemoteBackend) DeleteProduct(ctx context.Context, id string) error {
	resp, err := b.do(ctx, http.MethodDelete, "/products/"+id, nil)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (b *RemoteBackend) ConfirmOrder(ctx context.Context, orderID string, _ []ConfirmItem) error {
	resp, err := b.do(ctx, http.MethodPatch, "/orders/"+orderID+"/confirm", nil)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
