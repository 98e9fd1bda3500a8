package repository

import (
	"context"

	"gorm.io/gorm"

	"brigade/internal/model"
)

// ReportRepository adds the donation-scoped filter to the generic contract.
type ReportRepository interface {
	Repository[model.Report]
	GetByDonationID(ctx context.Context, donationID int) ([]model.Report, error)
}

type reportRepository struct {
	gormRepository[model.Report]
}

// NewReportRepository builds a GORM-backed report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{gormRepository[model.Report]{db: db}}
}

func (r *reportRepository) GetByDonationID(ctx context.Context, donationID int) ([]model.Report, error) {
	return r.GetAllByCondition(ctx, "donation_id = ?", donationID)
}
