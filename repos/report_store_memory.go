package repos

import (
	"context"
	"sort"
	"sync"
	"time"

	"p9e.in/splicing/models"
)

// MemoryReportStore is an in-process ReportStore used by tests and by the
// -memory flag for running without PostgreSQL.
type MemoryReportStore struct {
	mu      sync.RWMutex
	reports map[int64]models.Report
	nextID  int64
	now     func() time.Time
}

func NewMemoryReportStore() *MemoryReportStore {
	return &MemoryReportStore{
		reports: make(map[int64]models.Report),
		now:     time.Now,
	}
}

func (s *MemoryReportStore) Insert(_ context.Context, r *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	r.ID = s.nextID
	r.CreatedAt = s.now()
	r.UpdatedAt = r.CreatedAt
	s.reports[r.ID] = cloneReport(*r)
	return nil
}

func (s *MemoryReportStore) ListAll(_ context.Context) ([]models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, cloneReport(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryReportStore) UpdateByID(_ context.Context, id int64, changes models.ReportChanges) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if len(changes) > 0 {
		changes.Apply(&r)
		r.UpdatedAt = s.now()
		s.reports[id] = r
	}
	out := cloneReport(r)
	return &out, nil
}

func (s *MemoryReportStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reports, id)
	return nil
}

func (s *MemoryReportStore) Ping(context.Context) error { return nil }

// cloneReport copies the pointer fields so callers cannot mutate stored rows.
func cloneReport(r models.Report) models.Report {
	r.GpsCoordinates = copyString(r.GpsCoordinates)
	r.TimeFinished = copyString(r.TimeFinished)
	r.ProblemDetails = copyString(r.ProblemDetails)
	return r
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
