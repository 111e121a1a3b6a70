// ABOUTME: Report service shapes scan results for presentation consumers
// ABOUTME: Builds per-location summaries, attention flags, and detail views

package report

import (
	"context"
	"fmt"
	"math"

	"localrank-app-api/core/domain"
	"localrank-app-api/core/interfaces"
)

const (
	// attentionRatingFloor flags locations rated below this
	attentionRatingFloor = 4.0

	// attentionRankCutoff flags locations ranked worse than this
	attentionRankCutoff = 3

	// detailCompetitorCount caps the competitor list in detail views
	detailCompetitorCount = 4
)

// Scanner is the single-scan pipeline the report service reads from.
// The scan service implements it.
type Scanner interface {
	Scan(ctx context.Context, location domain.Location, keyword domain.Keyword) (domain.ScanResult, error)
}

// Overview aggregates the summary rows for the all-locations dashboard.
type Overview struct {
	// Summaries holds one row per location, in configuration order
	Summaries []domain.LocationSummary

	// AvgRating is the mean self rating across locations
	AvgRating float64

	// AvgRank is the mean self rank across locations
	AvgRank float64

	// AttentionCount is how many locations are flagged
	AttentionCount int
}

// Detail is the single-location competitive view: our listing plus the top
// competitors, each with a map link when a place identifier is known.
type Detail struct {
	Location    domain.Location
	Self        ListingView
	Competitors []ListingView
	Source      domain.ScanSource
}

// ListingView is a listing plus its derived map link.
type ListingView struct {
	domain.ListingResult
	IsSelf  bool
	MapLink string
}

// Service builds presentation-facing views on top of the scan pipeline.
type Service struct {
	scanner Scanner
	logger  interfaces.Logger

	// keyword is the fixed area-scan search term (the business category)
	keyword domain.Keyword
}

// NewService creates a report service instance.
func NewService(scanner Scanner, logger interfaces.Logger, keyword domain.Keyword) *Service {
	return &Service{
		scanner: scanner,
		logger:  logger,
		keyword: keyword,
	}
}

// BuildOverview scans every location and assembles the summary rows with
// their attention flags. Scans go through the cached single-scan path, so a
// missing credential degrades to synthetic data instead of failing.
func (s *Service) BuildOverview(ctx context.Context, locations []domain.Location) (Overview, error) {
	overview := Overview{Summaries: make([]domain.LocationSummary, 0, len(locations))}

	var ratingSum, rankSum float64
	for _, location := range locations {
		result, err := s.scanner.Scan(ctx, location, s.keyword)
		if err != nil {
			return Overview{}, err
		}

		summary := buildSummary(location, result)
		overview.Summaries = append(overview.Summaries, summary)

		ratingSum += summary.Rating
		rankSum += float64(summary.Rank)
		if summary.NeedsAttention {
			overview.AttentionCount++
		}
	}

	if n := len(overview.Summaries); n > 0 {
		overview.AvgRating = round2(ratingSum / float64(n))
		overview.AvgRank = round2(rankSum / float64(n))
	}

	return overview, nil
}

// BuildDetail returns the competitive detail view for one location.
func (s *Service) BuildDetail(ctx context.Context, location domain.Location) (Detail, error) {
	result, err := s.scanner.Scan(ctx, location, s.keyword)
	if err != nil {
		return Detail{}, err
	}

	detail := Detail{
		Location: location,
		Self: ListingView{
			ListingResult: result.Self.ListingResult,
			IsSelf:        true,
			MapLink:       result.Self.MapsURL(),
		},
		Source: result.Source,
	}

	for _, competitor := range result.TopCompetitors(detailCompetitorCount) {
		detail.Competitors = append(detail.Competitors, ListingView{
			ListingResult: competitor.ListingResult,
			MapLink:       competitor.MapsURL(),
		})
	}

	return detail, nil
}

func buildSummary(location domain.Location, result domain.ScanResult) domain.LocationSummary {
	summary := domain.LocationSummary{
		Name:    location.Name,
		City:    location.City,
		Rank:    result.Self.Position,
		Rating:  result.Self.Rating,
		Reviews: result.Self.Reviews,
	}

	if summary.Rating < attentionRatingFloor {
		summary.AttentionReasons = append(summary.AttentionReasons,
			fmt.Sprintf("rating below %.1f (%.1f)", attentionRatingFloor, summary.Rating))
	}
	if summary.Rank > attentionRankCutoff {
		summary.AttentionReasons = append(summary.AttentionReasons,
			fmt.Sprintf("rank outside top %d (#%d)", attentionRankCutoff, summary.Rank))
	}
	summary.NeedsAttention = len(summary.AttentionReasons) > 0

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
