// ABOUTME: Ranks handler triggers full rank-tracking batch runs
// ABOUTME: Every run costs provider quota, so runs are POST-only and never scheduled

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"localrank-app-api/api/dto/mappers"
	"localrank-app-api/core/domain"
	"localrank-app-api/core/errors"
	"localrank-app-api/core/interfaces"
)

// RankRunner is the batch orchestration surface the handler depends on.
type RankRunner interface {
	Run(ctx context.Context, locations []domain.Location, keywords []domain.Keyword, sink interfaces.ProgressSink) ([]domain.RankRecord, error)
}

// rankRunRequest optionally narrows a run to a subset of the configured
// portfolio. Empty or absent lists mean the full portfolio.
type rankRunRequest struct {
	Locations []string `json:"locations"`
	Keywords  []string `json:"keywords"`
}

// RanksHandler handles rank-tracking run requests.
type RanksHandler struct {
	tracker   RankRunner
	locations []domain.Location
	keywords  []domain.Keyword
	logger    interfaces.Logger
}

// NewRanksHandler creates a ranks handler over the configured portfolio.
func NewRanksHandler(tracker RankRunner, locations []domain.Location, keywords []domain.Keyword, logger interfaces.Logger) *RanksHandler {
	return &RanksHandler{
		tracker:   tracker,
		locations: locations,
		keywords:  keywords,
		logger:    logger,
	}
}

// RunRanks handles POST /api/ranks
func (h *RanksHandler) RunRanks(w http.ResponseWriter, r *http.Request) {
	locations, keywords, err := h.resolveScope(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	records, err := h.tracker.Run(r.Context(), locations, keywords, h.logProgress)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToRankRunResponse(records))
}

// resolveScope narrows the configured portfolio to the request's subset.
func (h *RanksHandler) resolveScope(r *http.Request) ([]domain.Location, []domain.Keyword, error) {
	var req rankRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return nil, nil, &errors.ValidationError{
			Field:   "body",
			Message: "request body must be valid JSON",
		}
	}

	locations := h.locations
	if len(req.Locations) > 0 {
		locations = make([]domain.Location, 0, len(req.Locations))
		for _, name := range req.Locations {
			location, ok := h.findLocation(name)
			if !ok {
				return nil, nil, &errors.ValidationError{
					Field:   "locations",
					Message: "unknown location: " + name,
				}
			}
			locations = append(locations, location)
		}
	}

	keywords := h.keywords
	if len(req.Keywords) > 0 {
		keywords = make([]domain.Keyword, 0, len(req.Keywords))
		for _, kw := range req.Keywords {
			keyword := domain.Keyword(kw)
			if err := keyword.Validate(); err != nil {
				return nil, nil, &errors.ValidationError{
					Field:   "keywords",
					Message: err.Error(),
				}
			}
			keywords = append(keywords, keyword)
		}
	}

	return locations, keywords, nil
}

func (h *RanksHandler) findLocation(name string) (domain.Location, bool) {
	for _, location := range h.locations {
		if location.Name == name {
			return location, true
		}
	}
	return domain.Location{}, false
}

// logProgress reports batch progress to the application log.
func (h *RanksHandler) logProgress(completed, total int) {
	h.logger.Debug("rank run progress", map[string]interface{}{
		"completed": completed,
		"total":     total,
	})
}
