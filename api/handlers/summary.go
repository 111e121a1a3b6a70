// ABOUTME: Summary handler serves the all-locations dashboard overview
// ABOUTME: Delegates to the report service and shapes the response DTO

package handlers

import (
	"context"
	"net/http"

	"localrank-app-api/api/dto/mappers"
	"localrank-app-api/core/domain"
	"localrank-app-api/core/interfaces"
	"localrank-app-api/core/report"
)

// ReportService is the view-building surface the handlers depend on.
type ReportService interface {
	BuildOverview(ctx context.Context, locations []domain.Location) (report.Overview, error)
	BuildDetail(ctx context.Context, location domain.Location) (report.Detail, error)
}

// SummaryHandler handles dashboard overview requests.
type SummaryHandler struct {
	reports   ReportService
	locations []domain.Location
	logger    interfaces.Logger
}

// NewSummaryHandler creates a summary handler over the configured locations.
func NewSummaryHandler(reports ReportService, locations []domain.Location, logger interfaces.Logger) *SummaryHandler {
	return &SummaryHandler{
		reports:   reports,
		locations: locations,
		logger:    logger,
	}
}

// GetSummary handles GET /api/summary
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	overview, err := h.reports.BuildOverview(r.Context(), h.locations)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToOverviewResponse(overview))
}
