package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"p9e.in/splicing/models"
	"p9e.in/splicing/services"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// demoReports are the sample entries shown on a fresh dashboard.
var demoReports = []models.CreateReportInput{
	{
		Zone: "SCT", ChainNo: "CH001", SplicingTeam: "Team 1", Name: "John Smith",
		JobID: "JOB-001", BjOrSite: "BJ-001", Routing: "Route-A", Date: "2025-12-15",
		TimeBegin: strPtr("09:15"), Status: boolPtr(true), Effect: "Excellent connection quality",
	},
	{
		Zone: "CWT", ChainNo: "CH002", SplicingTeam: "Team 2", Name: "Jane Doe",
		JobID: "JOB-002", BjOrSite: "Site-B", Routing: "Route-B", Date: "2025-12-16",
		TimeBegin: strPtr("10:30"), Status: boolPtr(true), Effect: "Minor adjustments needed",
	},
	{
		Zone: "TWA", ChainNo: "CH003", SplicingTeam: "Team 1", Name: "Mike Johnson",
		JobID: "JOB-003", BjOrSite: "BJ-003", Routing: "Route-C", Date: "2025-12-17",
		TimeBegin: strPtr("14:45"), Status: boolPtr(false), Effect: "Pending review",
	},
}

// SeedDemoReports inserts the demo reports when no report exists yet.
// It returns the number of reports inserted.
func SeedDemoReports(ctx context.Context, svc *services.ReportService, logger *zap.Logger) (int, error) {
	existing, err := svc.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("check existing reports: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("reports present, skipping demo seeding", zap.Int("count", len(existing)))
		return 0, nil
	}

	for i, in := range demoReports {
		if _, err := svc.Create(ctx, in); err != nil {
			return i, fmt.Errorf("seed report %s: %w", in.JobID, err)
		}
	}
	logger.Info("database seeded with demo reports", zap.Int("count", len(demoReports)))
	return len(demoReports), nil
}
