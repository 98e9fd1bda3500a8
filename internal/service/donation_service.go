package service

import (
	"context"
	"fmt"

	"brigade/internal/apperr"
	"brigade/internal/cache"
	"brigade/internal/dto"
	"brigade/internal/model"
	"brigade/internal/repository"
)

// DonationService exposes campaign operations. It composes the report
// service for the parent/child pattern: the donation side owns the "does
// this campaign exist" check, the report side owns the child row.
type DonationService interface {
	GetAll(ctx context.Context) ([]model.Donation, error)
	GetByID(ctx context.Context, id int) (*model.Donation, error)
	Create(ctx context.Context, m dto.DonationCreateModel) (*model.Donation, error)
	Update(ctx context.Context, m dto.DonationUpdateModel) (*model.Donation, error)
	Delete(ctx context.Context, id int) (bool, error)
	UpdateImage(ctx context.Context, id int, url string) (bool, error)
	CreateReport(ctx context.Context, donationID int, m dto.ReportCreateModel) (bool, error)
	ToggleCompletion(ctx context.Context, id int) (bool, error)
	ReportsByDonation(ctx context.Context, donationID int) ([]model.Report, error)
}

type donationService struct {
	*CrudService[model.Donation, dto.DonationCreateModel, dto.DonationUpdateModel]
	repo    repository.Repository[model.Donation]
	reports ReportService
}

// NewDonationService builds a donation service on top of the report service.
func NewDonationService(repo repository.Repository[model.Donation], reports ReportService, cache *cache.Client) DonationService {
	return &donationService{
		CrudService: NewCrudService(repo, cache, "donation", dto.DonationCreateModel.ToEntity, dto.DonationUpdateModel.Apply),
		repo:        repo,
		reports:     reports,
	}
}

// UpdateImage persists a new image path on the campaign. Returns false
// when the campaign does not exist.
func (s *donationService) UpdateImage(ctx context.Context, id int, url string) (bool, error) {
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
		return false, fmt.Errorf("update donation image: %w", err)
	}

	s.invalidate(ctx, id)
	return affected == 1, nil
}

// CreateReport creates a usage report scoped to an existing campaign. The
// operation succeeds iff the child row was actually persisted.
func (s *donationService) CreateReport(ctx context.Context, donationID int, m dto.ReportCreateModel) (bool, error) {
	donation, err := s.repo.GetByID(ctx, donationID)
	if err != nil {
		return false, err
	}
	if donation == nil {
		return false, apperr.ErrDonationNotFound
	}

	m.DonationID = donationID
	report, err := s.reports.Create(ctx, m)
	if err != nil {
		return false, err
	}
	return report != nil, nil
}

// ToggleCompletion flips the campaign's completion flag. This is the only
// path that changes it.
func (s *donationService) ToggleCompletion(ctx context.Context, id int) (bool, error) {
	donation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if donation == nil {
		return false, apperr.ErrDonationNotFound
	}

	donation.IsCompleted = !donation.IsCompleted

	uow := s.repo.NewUnitOfWork()
	s.repo.Update(uow, donation)
	affected, err := uow.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("toggle donation state: %w", err)
	}

	s.invalidate(ctx, id)
	return affected == 1, nil
}

// ReportsByDonation lists the campaign's usage reports.
func (s *donationService) ReportsByDonation(ctx context.Context, donationID int) ([]model.Report, error) {
	return s.reports.ByDonation(ctx, donationID)
}
