// ABOUTME: Mapping functions from domain models to response DTOs
// ABOUTME: Keeps JSON shaping concerns out of the core packages

package mappers

import (
	"localrank-app-api/api/dto/responses"
	"localrank-app-api/core/domain"
	"localrank-app-api/core/report"
)

// ToOverviewResponse converts a report overview to its wire format.
func ToOverviewResponse(overview report.Overview) responses.OverviewResponse {
	resp := responses.OverviewResponse{
		Summaries:      make([]responses.LocationSummaryResponse, 0, len(overview.Summaries)),
		AvgRating:      overview.AvgRating,
		AvgRank:        overview.AvgRank,
		AttentionCount: overview.AttentionCount,
	}

	for _, s := range overview.Summaries {
		resp.Summaries = append(resp.Summaries, responses.LocationSummaryResponse{
			Name:             s.Name,
			City:             s.City,
			Rank:             s.Rank,
			Rating:           s.Rating,
			Reviews:          s.Reviews,
			NeedsAttention:   s.NeedsAttention,
			AttentionReasons: s.AttentionReasons,
		})
	}

	return resp
}

// ToDetailResponse converts a location detail view to its wire format.
func ToDetailResponse(detail report.Detail) responses.DetailResponse {
	resp := responses.DetailResponse{
		Name:        detail.Location.Name,
		City:        detail.Location.City,
		Self:        toListingResponse(detail.Self),
		Competitors: make([]responses.ListingResponse, 0, len(detail.Competitors)),
		Source:      string(detail.Source),
	}

	for _, c := range detail.Competitors {
		resp.Competitors = append(resp.Competitors, toListingResponse(c))
	}

	return resp
}

// ToRankRunResponse converts rank records to their wire format.
func ToRankRunResponse(records []domain.RankRecord) responses.RankRunResponse {
	resp := responses.RankRunResponse{
		Records: make([]responses.RankRecordResponse, 0, len(records)),
		Total:   len(records),
	}

	for _, r := range records {
		resp.Records = append(resp.Records, responses.RankRecordResponse{
			Location:       r.Location,
			Keyword:        string(r.Keyword),
			Rank:           r.Rank,
			RankDisplay:    r.RankDisplay,
			TopCompetitors: r.TopCompetitors,
		})
	}

	return resp
}

func toListingResponse(view report.ListingView) responses.ListingResponse {
	return responses.ListingResponse{
		Title:    view.Title,
		Rating:   view.Rating,
		Reviews:  view.Reviews,
		Position: view.Position,
		Address:  view.Address,
		IsSelf:   view.IsSelf,
		MapLink:  view.MapLink,
	}
}
