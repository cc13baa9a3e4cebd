/* cfbd.go
 * Contains the HTTP client used to fetch postseason games from the
 * CollegeFootballData API. Requests are rate limited with a token bucket so
 * scheduled syncs and manual triggers cannot hammer the provider
 */

package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cfp-bracket/api/shared"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.collegefootballdata.com"

// Client is the HTTP client for the game results provider
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates a provider client. baseURL falls back to the public API
// when empty; apiKey may be empty for unauthenticated access
func NewClient(baseURL string, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// FetchPostseasonGames fetches the season's postseason games, filtered to the
// top tier classification. Records with no team names or no score activity
// yet are dropped before normalization
// Preconditions: receives a context and the season year
// Postconditions: returns the provider's game records, or an error wrapping
// ErrUpstreamFetch on any transport or non-success failure
func (c *Client) FetchPostseasonGames(ctx context.Context, year int) ([]Game, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", shared.ErrUpstreamFetch, err)
	}

	u, err := url.Parse(c.baseURL + "/games")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base url: %v", shared.ErrUpstreamFetch, err)
	}
	params := u.Query()
	params.Set("year", fmt.Sprintf("%d", year))
	params.Set("seasonType", "postseason")
	params.Set("classification", "fbs")
	u.RawQuery = params.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", shared.ErrUpstreamFetch, err)
	}
	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", shared.ErrUpstreamFetch, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", shared.ErrUpstreamFetch, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", shared.ErrUpstreamFetch, err)
	}

	var games []Game
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", shared.ErrUpstreamFetch, err)
	}

	// Keep games with both teams known and at least some score activity,
	// matching what the bracket can ever score against
	var filtered []Game
	for _, game := range games {
		if game.HomeTeam == "" || game.AwayTeam == "" {
			continue
		}
		if !game.Completed && game.HomePoints == nil && game.AwayPoints == nil {
			continue
		}
		filtered = append(filtered, game)
	}

	return filtered, nil
}
