package repos

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"p9e.in/splicing/models"
)

// GormReportStore keeps reports in the "reports" table.
type GormReportStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormReportStore(db *gorm.DB, logger *zap.Logger) *GormReportStore {
	return &GormReportStore{db: db, logger: logger}
}

func (s *GormReportStore) Insert(ctx context.Context, r *models.Report) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *GormReportStore) ListAll(ctx context.Context) ([]models.Report, error) {
	reports := []models.Report{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// UpdateByID issues a single UPDATE ... RETURNING so the existence check and
// the write cannot race. An empty change set only reads the row.
func (s *GormReportStore) UpdateByID(ctx context.Context, id int64, changes models.ReportChanges) (*models.Report, error) {
	var report models.Report
	if len(changes) == 0 {
		err := s.db.WithContext(ctx).Where("id = ?", id).Take(&report).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("read report %d: %w", id, err)
		}
		return &report, nil
	}

	result := s.db.WithContext(ctx).
		Model(&report).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any(changes))
	if result.Error != nil {
		return nil, fmt.Errorf("update report %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.ErrNotFound
	}
	s.logger.Debug("report updated", zap.Int64("id", id), zap.Int("fields", len(changes)))
	return &report, nil
}

func (s *GormReportStore) DeleteByID(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Report{})
	if result.Error != nil {
		return fmt.Errorf("delete report %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		s.logger.Debug("delete of missing report ignored", zap.Int64("id", id))
	}
	return nil
}

func (s *GormReportStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
