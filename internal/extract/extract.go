// Package extract calls the external contract data extraction endpoint.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"contractapi/internal/config"
	"contractapi/internal/metadata"
)

// ErrNotConfigured is returned when no extraction URL is set.
var ErrNotConfigured = errors.New("contract extraction is not configured")

// Request identifies the uploaded document to analyse.
type Request struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
}

// Result is the subset of extracted fields the upload flow uses.
type Result struct {
	ExpiryDate *time.Time
	Vendor     *string
	Amount     *float64
}

// Extractor pulls contract data out of an uploaded document.
type Extractor interface {
	Extract(ctx context.Context, req Request) (*Result, error)
}

type response struct {
	ExpiryDate string   `json:"expiryDate"`
	Vendor     *string  `json:"vendor"`
	Amount     *float64 `json:"amount"`
}

// Client is the HTTP implementation of Extractor.
type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a traced HTTP client for the extraction endpoint.
func NewClient(cfg config.ExtractionConfig) *Client {
	return &Client{
		url: cfg.URL,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

var _ Extractor = (*Client)(nil)

func (c *Client) Extract(ctx context.Context, req Request) (*Result, error) {
	if c.url == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call extractor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("extractor returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode extractor response: %w", err)
	}

	res := &Result{Vendor: out.Vendor, Amount: out.Amount}
	if out.ExpiryDate != "" {
		t, err := metadata.ParseExpiry(out.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("extractor expiry date: %w", err)
		}
		res.ExpiryDate = &t
	}
	return res, nil
}
