package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

// Client represents a connector to the external movie catalog.
type Client interface {
	Trending(ctx context.Context) (Page, error)
	Upcoming(ctx context.Context) (Page, error)
	Similar(ctx context.Context, movieID string) (Page, error)
	Search(ctx context.Context, query string) (Page, error)
	Discover(ctx context.Context, genreIDs []int) (Page, error)
	Details(ctx context.Context, movieID string) (Details, error)
	Credits(ctx context.Context, movieID string) (Credits, error)
}

// HTTPClient talks to the TMDB v3 API over HTTP with bearer authentication.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient builds a catalog connector for the given base URL and API token.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Trending fetches this week's trending movies.
func (c *HTTPClient) Trending(ctx context.Context) (Page, error) {
	var page Page
	err := c.get(ctx, "/trending/movie/week", url.Values{"language": {"en-US"}}, &page)
	return page, err
}

// Upcoming fetches the first page of upcoming movies.
func (c *HTTPClient) Upcoming(ctx context.Context) (Page, error) {
	var page Page
	err := c.get(ctx, "/movie/upcoming", url.Values{"language": {"en-US"}, "page": {"1"}}, &page)
	return page, err
}

// Similar fetches movies similar to the given one.
func (c *HTTPClient) Similar(ctx context.Context, movieID string) (Page, error) {
	var page Page
	err := c.get(ctx, "/movie/"+url.PathEscape(movieID)+"/similar", url.Values{"page": {"1"}}, &page)
	return page, err
}

// Search runs a free-text movie search.
func (c *HTTPClient) Search(ctx context.Context, query string) (Page, error) {
	var page Page
	err := c.get(ctx, "/search/movie", url.Values{"query": {query}}, &page)
	return page, err
}

// Discover lists popular movies matching the given genres.
func (c *HTTPClient) Discover(ctx context.Context, ids []int) (Page, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	var page Page
	err := c.get(ctx, "/discover/movie", url.Values{
		"include_adult": {"true"},
		"include_video": {"false"},
		"language":      {"en-US"},
		"page":          {"1"},
		"sort_by":       {"popularity.desc"},
		"with_genres":   {strings.Join(parts, ",")},
	}, &page)
	return page, err
}

// Details fetches the full record for one movie.
func (c *HTTPClient) Details(ctx context.Context, movieID string) (Details, error) {
	var details Details
	err := c.get(ctx, "/movie/"+url.PathEscape(movieID), url.Values{"language": {"en-US"}}, &details)
	return details, err
}

// Credits fetches the cast and crew for one movie.
func (c *HTTPClient) Credits(ctx context.Context, movieID string) (Credits, error) {
	var credits Credits
	err := c.get(ctx, "/movie/"+url.PathEscape(movieID)+"/credits", url.Values{"language": {"en-US"}}, &credits)
	return credits, err
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog request %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response %s: %w", path, err)
	}
	return nil
}
