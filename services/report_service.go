package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"p9e.in/splicing/models"
	"p9e.in/splicing/repos"
	"p9e.in/splicing/utils"
)

// ReportService owns the report lifecycle rules: default values on create,
// merge-patch updates and the completion transition. It keeps no state of its
// own between calls.
type ReportService struct {
	store  repos.ReportStore
	logger *zap.Logger

	// Now and Location define the wall clock used for timeBegin and
	// timeFinished. Tests replace Now with a fixed clock.
	Now      func() time.Time
	Location *time.Location
}

// Option customizes a ReportService.
type Option func(*ReportService)

// WithClock sets the clock used to stamp report times.
func WithClock(now func() time.Time) Option {
	return func(s *ReportService) { s.Now = now }
}

// WithLocation sets the time zone report times are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(s *ReportService) {
		if loc != nil {
			s.Location = loc
		}
	}
}

func NewReportService(store repos.ReportStore, logger *zap.Logger, opts ...Option) *ReportService {
	s := &ReportService{
		store:    store,
		logger:   logger,
		Now:      time.Now,
		Location: time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReportService) clock() string {
	return s.Now().In(s.Location).Format(models.ClockLayout)
}

// Create validates input, derives timeBegin when absent and stores the report.
// Status is false unless the caller set it.
func (s *ReportService) Create(ctx context.Context, in models.CreateReportInput) (*models.Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	report := &models.Report{
		Zone:           in.Zone,
		ChainNo:        in.ChainNo,
		SplicingTeam:   in.SplicingTeam,
		Name:           in.Name,
		JobID:          in.JobID,
		BjOrSite:       in.BjOrSite,
		Routing:        in.Routing,
		Date:           in.Date,
		GpsCoordinates: in.GpsCoordinates,
		TimeFinished:   in.TimeFinished,
		Effect:         in.Effect,
		ProblemDetails: in.ProblemDetails,
	}
	if in.TimeBegin != nil {
		report.TimeBegin = *in.TimeBegin
	} else {
		report.TimeBegin = s.clock()
	}
	if in.Status != nil {
		report.Status = *in.Status
	}

	if !models.IsKnownZone(report.Zone) {
		s.logger.Debug("report zone is not in the form's zone list", zap.String("zone", report.Zone))
	}

	if err := s.store.Insert(ctx, report); err != nil {
		return nil, err
	}
	s.logger.Info("report created",
		zap.Int64("id", report.ID),
		zap.String("zone", report.Zone),
		zap.String("job_id", report.JobID),
	)
	return report, nil
}

// List returns every report in insertion order.
func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	return s.store.ListAll(ctx)
}

// Update applies only the fields present in changes. It returns
// models.ErrNotFound when the report does not exist.
func (s *ReportService) Update(ctx context.Context, id int64, changes models.ReportChanges) (*models.Report, error) {
	if err := changes.Validate(); err != nil {
		return nil, err
	}
	report, err := s.store.UpdateByID(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		s.logger.Info("report updated", zap.Int64("id", id), zap.Bool("status", report.Status))
	}
	return report, nil
}

// Complete marks the report complete and stamps timeFinished with the current
// time. Completing an already complete report restamps it.
func (s *ReportService) Complete(ctx context.Context, id int64) (*models.Report, error) {
	changes := models.ReportChanges{
		"status":        true,
		"time_finished": s.clock(),
	}
	report, err := s.store.UpdateByID(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.logger.Info("report completed", zap.Int64("id", id), zap.String("time_finished", report.FinishedAt()))
	return report, nil
}

// Delete removes the report. Deleting an id that does not exist succeeds.
func (s *ReportService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("report deleted", zap.Int64("id", id))
	return nil
}

// Stats aggregates the current reports for the dashboard.
func (s *ReportService) Stats(ctx context.Context) (*utils.ReportStats, error) {
	reports, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.BuildReportStats(reports, s.Now().In(s.Location)), nil
}

// Ping reports whether the backing store is reachable.
func (s *ReportService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
