// ABOUTME: Rank tracker drives the cartesian batch over locations and keywords
// ABOUTME: Isolates per-pair failures and reports advisory progress

package rank

import (
	"context"
	"strconv"

	"localrank-app-api/core/domain"
	"localrank-app-api/core/errors"
	"localrank-app-api/core/interfaces"
)

// topCompetitorCount is how many page entries each rank record carries.
const topCompetitorCount = 3

// Scanner is the cached fetch-and-classify pipeline the tracker drives.
// The scan service implements it.
type Scanner interface {
	ScanStrict(ctx context.Context, location domain.Location, keyword domain.Keyword) (domain.ScanResult, error)
}

// Tracker runs full rank-tracking batches. Every provider call costs quota,
// so runs are caller-triggered only and strictly require a credential.
type Tracker struct {
	scanner Scanner
	search  interfaces.SearchClient
	logger  interfaces.Logger
}

// NewTracker creates a tracker instance.
func NewTracker(scanner Scanner, search interfaces.SearchClient, logger interfaces.Logger) *Tracker {
	return &Tracker{
		scanner: scanner,
		search:  search,
		logger:  logger,
	}
}

// Run iterates the cartesian product of locations and keywords (locations
// outer, keywords inner) and returns exactly len(locations)*len(keywords)
// rank records in that order.
//
// A failing pair never aborts the run: it is recorded as an error-sentinel
// record and iteration continues. The only early exits are a missing
// credential, detected before any call, and context cancellation, honored
// between pairs (never mid-call).
//
// sink, when non-nil, receives completed/total after every attempted pair.
// It is advisory only.
func (t *Tracker) Run(ctx context.Context, locations []domain.Location, keywords []domain.Keyword, sink interfaces.ProgressSink) ([]domain.RankRecord, error) {
	if !t.search.Configured() {
		return nil, &errors.ConfigurationError{
			Setting: "SERPAPI_KEY",
			Message: "credential required for rank tracking runs",
		}
	}

	total := len(locations) * len(keywords)
	records := make([]domain.RankRecord, 0, total)

	t.logger.Info("rank tracking run started", map[string]interface{}{
		"locations": len(locations),
		"keywords":  len(keywords),
		"total":     total,
	})

	completed := 0
	for _, location := range locations {
		for _, keyword := range keywords {
			if err := ctx.Err(); err != nil {
				return records, err
			}

			result, err := t.scanner.ScanStrict(ctx, location, keyword)
			if err != nil {
				if ctx.Err() != nil {
					return records, ctx.Err()
				}

				t.logger.Error("rank check failed", map[string]interface{}{
					"location": location.Name,
					"keyword":  string(keyword),
					"error":    err.Error(),
				})
				records = append(records, errorRecord(location, keyword))
			} else {
				records = append(records, buildRecord(location, keyword, result))
			}

			completed++
			if sink != nil {
				sink(completed, total)
			}
		}
	}

	t.logger.Info("rank tracking run completed", map[string]interface{}{
		"records": len(records),
	})

	return records, nil
}

// buildRecord converts a scan result into one rank matrix cell. The rank is
// the self listing's observed position; the not-found placeholder serializes
// to the beyond-page sentinel and its label here, at the output boundary.
func buildRecord(location domain.Location, keyword domain.Keyword, result domain.ScanResult) domain.RankRecord {
	record := domain.RankRecord{
		Location:    location.Name,
		Keyword:     keyword,
		Rank:        domain.RankNotFound,
		RankDisplay: domain.RankNotFoundDisplay,
	}

	if result.SelfFound() {
		record.Rank = result.Self.Position
		record.RankDisplay = strconv.Itoa(result.Self.Position)
	}

	// Top page entries are reported regardless of whether our own listing
	// is among them.
	for _, listing := range result.PageOrder() {
		if len(record.TopCompetitors) == topCompetitorCount {
			break
		}
		record.TopCompetitors = append(record.TopCompetitors, listing.Display())
	}

	return record
}

func errorRecord(location domain.Location, keyword domain.Keyword) domain.RankRecord {
	return domain.RankRecord{
		Location:       location.Name,
		Keyword:        keyword,
		Rank:           domain.RankError,
		RankDisplay:    domain.RankErrorDisplay,
		TopCompetitors: []string{},
	}
}
