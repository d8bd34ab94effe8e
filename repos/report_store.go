package repos

import (
	"context"

	"p9e.in/splicing/models"
)

// ReportStore is the durable collection of reports. Implementations must
// apply UpdateByID atomically and never reuse an id.
type ReportStore interface {
	// Insert persists r and fills in ID and CreatedAt.
	Insert(ctx context.Context, r *models.Report) error
	// ListAll returns every report ordered by ascending id.
	ListAll(ctx context.Context) ([]models.Report, error)
	// UpdateByID applies changes and returns the stored row, or
	// models.ErrNotFound when no row has that id.
	UpdateByID(ctx context.Context, id int64, changes models.ReportChanges) (*models.Report, error)
	// DeleteByID removes the row. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
