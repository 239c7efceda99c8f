package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type (
	// Info is the product metadata resolved for a barcode. A nil *Info means
	// the barcode had no match; that is not an error.
	Info struct {
		Title       string `json:"title"`
		Brand       string `json:"brand"`
		Description string `json:"description"`
		ImageURL    string `json:"image"`
	}

	LookupClient interface {
		Lookup(ctx context.Context, barcode string) (*Info, error)
	}

	lookupClient struct {
		baseURL    string
		httpClient *http.Client
	}
)

func NewLookupClient(baseURL string) LookupClient {
	return &lookupClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *lookupClient) Lookup(ctx context.Context, barcode string) (*Info, error) {
	if c.baseURL == "" {
		return nil, nil
	}

	lookupURL := fmt.Sprintf("%s?barcode=%s", c.baseURL, url.QueryEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product lookup error: %s", resp.Status)
	}

	var payload struct {
		Title       string   `json:"title"`
		Name        string   `json:"name"`
		Alias       string   `json:"alias"`
		Brand       string   `json:"brand"`
		Description string   `json:"description"`
		Image       string   `json:"image"`
		Images      []string `json:"images"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	title := payload.Title
	if title == "" {
		title = payload.Name
	}
	if title == "" {
		title = payload.Alias
	}

	image := payload.Image
	if image == "" && len(payload.Images) > 0 {
		image = payload.Images[0]
	}

	if title == "" && payload.Brand == "" && payload.Description == "" && image == "" {
		return nil, nil
	}

	return &Info{
		Title:       title,
		Brand:       payload.Brand,
		Description: payload.Description,
		ImageURL:    image,
	}, nil
}
