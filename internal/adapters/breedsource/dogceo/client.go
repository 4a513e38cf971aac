package dogceo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pet-care-scheduler/internal/platform/httpclient"
)

var (
	ErrDogCEOUpstream = errors.New("dog ceo upstream error")
	ErrNoImage        = errors.New("dog ceo returned no image")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implementa breeds.ImageSource contra dog.ceo.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = "https://dog.ceo"
	}
	hc, err := httpclient.New(httpclient.Options{BaseURL: base, Timeout: cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("dogceo: %w", err)
	}
	return &Client{http: hc}, nil
}

type randomImageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// RandomImage devuelve una URL de imagen random para la raza.
// Dog CEO responde {"status":"error","message":"Breed not found..."} con 404;
// eso es error, nunca una URL.
func (c *Client) RandomImage(ctx context.Context, slug string) (string, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return "", errors.New("slug required")
	}

	path := "/api/breed/" + url.PathEscape(slug) + "/images/random"

	var out randomImageResponse
	if err := c.http.GetJSON(ctx, path, nil, &out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDogCEOUpstream, err)
	}
	if out.Status != "" && !strings.EqualFold(out.Status, "success") {
		return "", fmt.Errorf("%w: status=%s", ErrNoImage, out.Status)
	}

	u := strings.TrimSpace(out.Message)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return "", ErrNoImage
	}
	return u, nil
}
