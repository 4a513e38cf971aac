package thedogapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pet-care-scheduler/internal/domain/breeds"
	"pet-care-scheduler/internal/platform/httpclient"
)

var (
	ErrDogAPIUpstream = errors.New("thedogapi upstream error")
)

const breedsPath = "/v1/breeds"

// Config del cliente TheDogAPI.
// APIKey es opcional: sin key la API igual responde la primera página.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client implementa breeds.MetadataSource.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = "https://api.thedogapi.com"
	}
	hc, err := httpclient.New(httpclient.Options{
		BaseURL: base,
		Timeout: cfg.Timeout,
		Headers: map[string]string{"x-api-key": strings.TrimSpace(cfg.APIKey)},
	})
	if err != nil {
		return nil, fmt.Errorf("thedogapi: %w", err)
	}
	return &Client{http: hc}, nil
}

// breedDTO es lo mínimo que usamos de GET /v1/breeds.
type breedDTO struct {
	ID          *int   `json:"id"`
	Name        string `json:"name"`
	Temperament string `json:"temperament"`
	LifeSpan    string `json:"life_span"`
	Image       *struct {
		URL string `json:"url"`
	} `json:"image"`
}

// FetchBreeds trae una página de razas. Cualquier falla (red, no-2xx, json) es error.
func (c *Client) FetchBreeds(ctx context.Context, limit int) ([]breeds.RemoteBreed, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("%w: nil client", ErrDogAPIUpstream)
	}
	if limit <= 0 {
		limit = breeds.DefaultPageSize
	}

	var out []breedDTO
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.http.GetJSON(ctx, breedsPath, q, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDogAPIUpstream, err)
	}

	res := make([]breeds.RemoteBreed, 0, len(out))
	for _, b := range out {
		rb := breeds.RemoteBreed{
			ID:          b.ID,
			Name:        b.Name,
			Temperament: b.Temperament,
			LifeSpan:    b.LifeSpan,
		}
		if b.Image != nil {
			rb.ImageURL = b.Image.URL
		}
		res = append(res, rb)
	}
	return res, nil
}
