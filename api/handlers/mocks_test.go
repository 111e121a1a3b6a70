package handlers

import (
	"context"

	"localrank-app-api/core/domain"
	"localrank-app-api/core/interfaces"
	"localrank-app-api/core/report"
)

// mockReportService allows injecting view-building behavior
type mockReportService struct {
	buildOverviewFunc func(ctx context.Context, locations []domain.Location) (report.Overview, error)
	buildDetailFunc   func(ctx context.Context, location domain.Location) (report.Detail, error)
}

func (m *mockReportService) BuildOverview(ctx context.Context, locations []domain.Location) (report.Overview, error) {
	if m.buildOverviewFunc != nil {
		return m.buildOverviewFunc(ctx, locations)
	}
	return report.Overview{}, nil
}

func (m *mockReportService) BuildDetail(ctx context.Context, location domain.Location) (report.Detail, error) {
	if m.buildDetailFunc != nil {
		return m.buildDetailFunc(ctx, location)
	}
	return report.Detail{Location: location}, nil
}

// mockRankRunner allows injecting batch run behavior
type mockRankRunner struct {
	runFunc func(ctx context.Context, locations []domain.Location, keywords []domain.Keyword, sink interfaces.ProgressSink) ([]domain.RankRecord, error)
}

func (m *mockRankRunner) Run(ctx context.Context, locations []domain.Location, keywords []domain.Keyword, sink interfaces.ProgressSink) ([]domain.RankRecord, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, locations, keywords, sink)
	}
	return nil, nil
}

// mockLogger discards all log output
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func testLocations() []domain.Location {
	return []domain.Location{
		{Name: "高堂中醫", City: "台北", Latitude: 25.0330, Longitude: 121.5654},
		{Name: "高堂中醫台中分院", City: "台中", Latitude: 24.1477, Longitude: 120.6736},
	}
}

func testKeywords() []domain.Keyword {
	return []domain.Keyword{"中醫診所", "針灸"}
}
