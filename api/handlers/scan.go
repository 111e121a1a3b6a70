// ABOUTME: Scan handler serves the single-location competitive detail view
// ABOUTME: Resolves the location by name and delegates to the report service

package handlers

import (
	"net/http"

	"localrank-app-api/api/dto/mappers"
	"localrank-app-api/core/domain"
	"localrank-app-api/core/interfaces"
)

// ScanHandler handles per-location scan detail requests.
type ScanHandler struct {
	reports   ReportService
	locations []domain.Location
	logger    interfaces.Logger
}

// NewScanHandler creates a scan handler over the configured locations.
func NewScanHandler(reports ReportService, locations []domain.Location, logger interfaces.Logger) *ScanHandler {
	return &ScanHandler{
		reports:   reports,
		locations: locations,
		logger:    logger,
	}
}

// GetScan handles GET /api/locations/{name}/scan
func (h *ScanHandler) GetScan(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	location, ok := h.findLocation(name)
	if !ok {
		writeNotFound(w, "unknown location: "+name)
		return
	}

	detail, err := h.reports.BuildDetail(r.Context(), location)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToDetailResponse(detail))
}

// findLocation resolves a configured location by exact name.
func (h *ScanHandler) findLocation(name string) (domain.Location, bool) {
	for _, location := range h.locations {
		if location.Name == name {
			return location, true
		}
	}
	return domain.Location{}, false
}
