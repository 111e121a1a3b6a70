// ABOUTME: Response DTOs returned by the API handlers
// ABOUTME: Defines the JSON wire format independently of the domain models

package responses

// ErrorResponse is the uniform error envelope for all failure responses.
type ErrorResponse struct {
	// Error is a short machine-readable error category
	Error string `json:"error"`

	// Message is a human-readable explanation
	Message string `json:"message"`
}

// LocationSummaryResponse is one dashboard row.
type LocationSummaryResponse struct {
	// Name is the location's business name
	Name string `json:"name"`

	// City is the location's city label
	City string `json:"city"`

	// Rank is the self listing's area rank
	Rank int `json:"rank"`

	// Rating is the self listing's star rating
	Rating float64 `json:"rating"`

	// Reviews is the self listing's review count
	Reviews int `json:"reviews"`

	// NeedsAttention is set when the location falls outside the healthy range
	NeedsAttention bool `json:"needs_attention"`

	// AttentionReasons lists why the location was flagged
	AttentionReasons []string `json:"attention_reasons,omitempty"`
}

// OverviewResponse is the all-locations dashboard payload.
type OverviewResponse struct {
	Summaries      []LocationSummaryResponse `json:"summaries"`
	AvgRating      float64                   `json:"avg_rating"`
	AvgRank        float64                   `json:"avg_rank"`
	AttentionCount int                       `json:"attention_count"`
}

// ListingResponse is one listing in a detail view.
type ListingResponse struct {
	Title    string  `json:"title"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Position int     `json:"position"`
	Address  string  `json:"address,omitempty"`
	IsSelf   bool    `json:"is_self"`
	MapLink  string  `json:"map_link,omitempty"`
}

// DetailResponse is the single-location competitive view.
type DetailResponse struct {
	Name        string            `json:"name"`
	City        string            `json:"city"`
	Self        ListingResponse   `json:"self"`
	Competitors []ListingResponse `json:"competitors"`

	// Source reports whether the scan came from live provider data or the
	// synthetic fallback
	Source string `json:"source"`
}

// RankRecordResponse is one cell of the rank matrix.
type RankRecordResponse struct {
	Location       string   `json:"location"`
	Keyword        string   `json:"keyword"`
	Rank           int      `json:"rank"`
	RankDisplay    string   `json:"rank_display"`
	TopCompetitors []string `json:"top_competitors"`
}

// RankRunResponse is the payload of a completed rank-tracking run.
type RankRunResponse struct {
	Records []RankRecordResponse `json:"records"`
	Total   int                  `json:"total"`
}
