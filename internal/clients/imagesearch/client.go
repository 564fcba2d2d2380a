package imagesearch

//go:generate mockgen -destination=mock/mock_client.go -package=mockimagesearch -source=client.go

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strings"
	"time"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

const defaultBaseURL = "https://google.serper.dev/images"

// Client searches for character images
type Client interface {
	// Search returns up to n image URLs for a query, direct links with
	// common raster extensions only
	Search(ctx context.Context, query string, n int) ([]string, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Config holds configuration for the client
type Config struct {
	APIKey     string       // Required
	HTTPClient *http.Client // Optional
	BaseURL    string       // Optional, defaults to the serper.dev endpoint
}

// New creates an image search client backed by serper.dev
func New(cfg *Config) Client {
	if cfg.APIKey == "" {
		panic("API key is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
	}
}

type searchResponse struct {
	Images []struct {
		ImageURL string `json:"imageUrl"`
	} `json:"images"`
}

func (c *client) Search(ctx context.Context, query string, n int) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, botErr.InvalidArgument("query is required")
	}
	if n <= 0 {
		return nil, botErr.InvalidAmountf("image count must be greater than 0, got %d", n)
	}

	payload, err := json.Marshal(map[string]string{"q": query})
	if err != nil {
		return nil, botErr.Wrap(err, "failed to encode search payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, botErr.Wrap(err, "failed to build search request")
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, botErr.Wrap(err, "image search request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, botErr.Internalf("image search returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, botErr.Wrap(err, "failed to decode search response")
	}

	var urls []string
	for _, img := range parsed.Images {
		if hasImageExtension(img.ImageURL) {
			urls = append(urls, img.ImageURL)
		}
	}
	if len(urls) == 0 {
		return nil, botErr.NotFoundf("no direct image links found for '%s'", query)
	}

	if n >= len(urls) {
		return urls, nil
	}

	// Random sample without replacement, matching how results are
	// spread when more links exist than requested
	picked := rand.Perm(len(urls))[:n]
	sample := make([]string, 0, n)
	for _, idx := range picked {
		sample = append(sample, urls[idx])
	}
	return sample, nil
}

func hasImageExtension(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasSuffix(lower, ".png") ||
		strings.HasSuffix(lower, ".jpg") ||
		strings.HasSuffix(lower, ".jpeg")
}
