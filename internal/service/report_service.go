package service

import (
	"context"
	"fmt"

	"brigade/internal/cache"
	"brigade/internal/dto"
	"brigade/internal/model"
	"brigade/internal/repository"
)

// ReportService exposes usage-report operations: generic CRUD plus
// image-path bookkeeping and the donation-scoped listing.
type ReportService interface {
	GetAll(ctx context.Context) ([]model.Report, error)
	GetByID(ctx context.Context, id int) (*model.Report, error)
	Create(ctx context.Context, m dto.ReportCreateModel) (*model.Report, error)
	Update(ctx context.Context, m dto.ReportUpdateModel) (*model.Report, error)
	Delete(ctx context.Context, id int) (bool, error)
	UpdateImage(ctx context.Context, id int, url string) (bool, error)
	ByDonation(ctx context.Context, donationID int) ([]model.Report, error)
}

type reportService struct {
	*CrudService[model.Report, dto.ReportCreateModel, dto.ReportUpdateModel]
	repo repository.ReportRepository
}

// NewReportService builds a report service.
func NewReportService(repo repository.ReportRepository, cache *cache.Client) ReportService {
	return &reportService{
		CrudService: NewCrudService[model.Report, dto.ReportCreateModel, dto.ReportUpdateModel](
			repo, cache, "report", dto.ReportCreateModel.ToEntity, dto.ReportUpdateModel.Apply),
		repo: repo,
	}
}

// UpdateImage persists a new image path on the report. Returns false when
// the report does not exist.
func (s *reportService) UpdateImage(ctx context.Context, id int, url string) (bool, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if entity == nil {
		return false, nil
	}

	entity.Img = url

	uow := s.repo.NewUnitOfWork()
	s.repo.Update(uow, entity)
	affected, err := uow.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("update report image: %w", err)
	}

	s.invalidate(ctx, id)
	return affected == 1, nil
}

// ByDonation filters reports by their owning donation.
func (s *reportService) ByDonation(ctx context.Context, donationID int) ([]model.Report, error) {
	return s.repo.GetByDonationID(ctx, donationID)
}
