// ABOUTME: SerpAPI Google Maps client for local-search results
// ABOUTME: Builds provider requests and parses local_results into domain listings

package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"localrank-app-api/core/domain"
	"localrank-app-api/core/errors"
	"localrank-app-api/core/interfaces"
)

const (
	baseURL      = "https://serpapi.com/search.json"
	providerName = "serpapi"

	// Default locale: Traditional Chinese results scoped to Taiwan,
	// matching the tracked market.
	defaultLanguage = "zh-TW"
	defaultRegion   = "tw"
)

// Client performs local-search calls against SerpAPI's google_maps engine.
// Each call is a single attempt over the injected HTTP client; pacing and
// retry policy belong to callers.
type Client struct {
	deps     interfaces.Dependencies
	apiKey   string
	language string
	region   string
}

// NewClient creates a SerpAPI client with the default locale. An empty
// apiKey is a valid state: the client reports itself unconfigured and
// callers route to fallback data.
func NewClient(deps interfaces.Dependencies, apiKey string) *Client {
	return NewClientWithLocale(deps, apiKey, "", "")
}

// NewClientWithLocale creates a SerpAPI client targeting a specific language
// and region. Empty values keep the defaults.
func NewClientWithLocale(deps interfaces.Dependencies, apiKey, language, region string) *Client {
	if language == "" {
		language = defaultLanguage
	}
	if region == "" {
		region = defaultRegion
	}

	return &Client{
		deps:     deps,
		apiKey:   apiKey,
		language: language,
		region:   region,
	}
}

// Configured reports whether a credential is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// LocalSearch fetches the first page of local results (at most ~20 entries)
// for the query. A provider-side error indicator, a non-200 status, or a
// transport failure all surface as a ServiceError.
func (c *Client) LocalSearch(ctx context.Context, query interfaces.SearchQuery) ([]domain.ListingResult, error) {
	if !c.Configured() {
		return nil, &errors.ConfigurationError{Setting: "SERPAPI_KEY", Message: "not set"}
	}

	resp, err := c.deps.HTTPClient.Get(ctx, c.requestURL(query))
	if err != nil {
		return nil, &errors.ServiceError{Provider: providerName, Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &errors.ServiceError{
			Provider:   providerName,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &errors.ServiceError{Provider: providerName, Message: "failed to read response: " + err.Error()}
	}

	return parseLocalResults(bodyBytes)
}

// requestURL encodes the provider request: engine/type selectors, the
// keyword, the center-point + zoom as a single ll string, and locale.
func (c *Client) requestURL(query interfaces.SearchQuery) string {
	lat, lng := query.Center()

	params := url.Values{}
	params.Set("engine", "google_maps")
	params.Set("type", "search")
	params.Set("q", string(query.Keyword()))
	params.Set("ll", fmt.Sprintf("@%f,%f,%s", lat, lng, query.Zoom()))
	params.Set("hl", c.language)
	params.Set("gl", c.region)
	params.Set("start", "0")
	params.Set("api_key", c.apiKey)

	return baseURL + "?" + params.Encode()
}

// localResult mirrors one entry of SerpAPI's local_results array. Rating,
// reviews, and position are absent for some listings; absence maps to the
// zero value, except position which maps to the beyond-page sentinel.
type localResult struct {
	Title    string   `json:"title"`
	Rating   *float64 `json:"rating"`
	Reviews  *int     `json:"reviews"`
	Position *int     `json:"position"`
	Address  string   `json:"address"`
	PlaceID  string   `json:"place_id"`
}

type searchResponse struct {
	Error        string        `json:"error"`
	LocalResults []localResult `json:"local_results"`
}

func parseLocalResults(body []byte) ([]domain.ListingResult, error) {
	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &errors.ServiceError{Provider: providerName, Message: "malformed response: " + err.Error()}
	}

	if response.Error != "" {
		return nil, &errors.ServiceError{Provider: providerName, Message: response.Error}
	}

	listings := make([]domain.ListingResult, 0, len(response.LocalResults))
	for _, r := range response.LocalResults {
		listing := domain.ListingResult{
			Title:    r.Title,
			Position: domain.PositionBeyondPage,
			Address:  r.Address,
			PlaceID:  r.PlaceID,
		}
		if r.Rating != nil {
			listing.Rating = *r.Rating
		}
		if r.Reviews != nil {
			listing.Reviews = *r.Reviews
		}
		if r.Position != nil {
			listing.Position = *r.Position
		}
		listings = append(listings, listing)
	}

	return listings, nil
}
