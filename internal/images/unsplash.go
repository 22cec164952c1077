// Package images resolves a cover photo for a trip destination through the
// Unsplash search API. Results are cached for a day so repeated trips to the
// same destination do not burn API quota. Lookup failures degrade to an
// empty URL; a missing image never blocks trip CRUD.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.unsplash.com"

type Service struct {
	accessKey  string
	baseURL    string
	cache      Cache
	cacheTTL   time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Service)

// WithBaseURL points the client at a different API host (tests).
func WithBaseURL(u string) Option {
	return func(s *Service) { s.baseURL = u }
}

// WithCache attaches a lookaside cache for resolved URLs.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) { s.cache, s.cacheTTL = c, ttl }
}

func New(accessKey string, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		accessKey:  accessKey,
		baseURL:    defaultBaseURL,
		cacheTTL:   24 * time.Hour,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DestinationImage returns a landscape photo URL for a destination, or ""
// when none could be resolved.
func (s *Service) DestinationImage(ctx context.Context, destination string) string {
	destination = strings.TrimSpace(destination)
	if destination == "" || s.accessKey == "" {
		return ""
	}

	key := "destination_image:" + strings.ToLower(destination)
	if s.cache != nil {
		var cached string
		if ok, err := s.cache.Get(ctx, key, &cached); err == nil && ok {
			s.logger.Debug("images.cache_hit", "destination", destination)
			return cached
		}
	}

	imageURL, err := s.search(ctx, destination)
	if err != nil {
		s.logger.Warn("images.lookup_failed", "destination", destination, "error", err)
		return ""
	}
	if imageURL != "" && s.cache != nil {
		if err := s.cache.Set(ctx, key, imageURL, s.cacheTTL); err != nil {
			s.logger.Warn("images.cache_set_failed", "destination", destination, "error", err)
		}
	}
	return imageURL
}

func (s *Service) search(ctx context.Context, destination string) (string, error) {
	endpoint := fmt.Sprintf("%s/search/photos?query=%s&orientation=landscape&per_page=1",
		strings.TrimRight(s.baseURL, "/"), url.QueryEscape(destination))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			s.logger.Warn("unsplash response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash status %d", resp.StatusCode)
	}

	var out struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", nil
	}
	return out.Results[0].URLs.Regular, nil
}
