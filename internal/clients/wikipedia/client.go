package wikipedia

//go:generate mockgen -destination=mock/mock_client.go -package=mockwikipedia -source=client.go

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

const (
	defaultBaseURL   = "https://en.wikipedia.org/wiki/"
	defaultCacheSize = 128
	userAgent        = "Mozilla/5.0 (Windows NT 6.1; rv:52.0) Gecko/20100101 Firefox/52.0"
)

// Client fetches topic summaries
type Client interface {
	// Summary returns the first paragraph of the article for a topic.
	// Disambiguation pages and missing articles yield a not_found error.
	Summary(ctx context.Context, topic string) (string, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	cache      *lru.Cache
}

// Config holds configuration for the client
type Config struct {
	HTTPClient *http.Client // Optional
	BaseURL    string       // Optional, defaults to English Wikipedia
	CacheSize  int          // Optional
}

// New creates a Wikipedia client with an LRU summary cache
func New(cfg *Config) Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	cache, _ := lru.New(cacheSize)
	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		cache:      cache,
	}
}

func (c *client) Summary(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", botErr.InvalidArgument("topic is required")
	}

	cacheKey := strings.ToLower(topic)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(string), nil
	}

	url := c.baseURL + strings.ReplaceAll(topic, " ", "_")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", botErr.Wrap(err, "failed to build wikipedia request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", botErr.Wrap(err, "wikipedia request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return "", botErr.NotFoundf("no article for '%s'", topic)
	}
	if resp.StatusCode != http.StatusOK {
		return "", botErr.Internalf("wikipedia returned status %d for '%s'", resp.StatusCode, topic)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", botErr.Wrap(err, "failed to read wikipedia response")
	}

	summary := firstParagraph(string(body))
	if summary == "" || strings.HasSuffix(summary, " may refer to:") {
		return "", botErr.NotFoundf("no usable summary for '%s'", topic)
	}

	c.cache.Add(cacheKey, summary)
	return summary, nil
}

// firstParagraph extracts the first <p> element and strips markup,
// HTML entities, parentheticals, and citation brackets
func firstParagraph(page string) string {
	start := strings.Index(page, "<p>")
	if start < 0 {
		return ""
	}
	page = page[start:]
	if end := strings.Index(page, "</p>"); end >= 0 {
		page = page[:end]
	}
	page = strings.ReplaceAll(page, "&#91;", "[")
	page = strings.ReplaceAll(page, "&#93;", "]")

	var text strings.Builder
	var waitingOn byte
	for i := 0; i < len(page); i++ {
		c := page[i]
		if waitingOn == 0 {
			switch c {
			case '<':
				waitingOn = '>'
			case '&':
				waitingOn = ';'
			case '(':
				waitingOn = ')'
			case '[':
				waitingOn = ']'
			default:
				text.WriteByte(c)
			}
			continue
		}
		if c == waitingOn {
			waitingOn = 0
		}
	}

	return strings.Join(strings.Fields(text.String()), " ")
}
