package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"brigade/internal/apperr"
	"brigade/internal/dto"
	"brigade/internal/model"
)

func newDonationFixture() (*MockRepository[model.Donation], *MockUnitOfWork, *MockReportService, DonationService) {
	repo := new(MockRepository[model.Donation])
	uow := new(MockUnitOfWork)
	reports := new(MockReportService)
	svc := NewDonationService(repo, reports, nil)
	return repo, uow, reports, svc
}

func TestDonationService_CreateReport(t *testing.T) {
	t.Run("missing campaign fails without touching the report side", func(t *testing.T) {
		repo, _, reports, svc := newDonationFixture()
		repo.On("GetByID", mock.Anything, 5).Return(nil, nil)

		ok, err := svc.CreateReport(context.Background(), 5, dto.ReportCreateModel{Title: "Spent on fuel"})

		assert.ErrorIs(t, err, apperr.ErrDonationNotFound)
		assert.False(t, ok)
		reports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("report is bound to the campaign regardless of the payload", func(t *testing.T) {
		repo, _, reports, svc := newDonationFixture()
		repo.On("GetByID", mock.Anything, 5).Return(&model.Donation{ID: 5, Title: "Generator fund"}, nil)
		reports.On("Create", mock.Anything, mock.MatchedBy(func(m dto.ReportCreateModel) bool {
			return m.DonationID == 5
		})).Return(&model.Report{ID: 1, DonationID: 5, Title: "Spent on fuel"}, nil)

		// The payload claims a different parent; the path parameter wins.
		ok, err := svc.CreateReport(context.Background(), 5, dto.ReportCreateModel{
			Title:      "Spent on fuel",
			DonationID: 999,
		})

		assert.NoError(t, err)
		assert.True(t, ok)
		reports.AssertExpectations(t)
	})
}

func TestDonationService_ToggleCompletion(t *testing.T) {
	t.Run("missing campaign", func(t *testing.T) {
		repo, _, _, svc := newDonationFixture()
		repo.On("GetByID", mock.Anything, 8).Return(nil, nil)

		ok, err := svc.ToggleCompletion(context.Background(), 8)

		assert.ErrorIs(t, err, apperr.ErrDonationNotFound)
		assert.False(t, ok)
	})

	t.Run("toggling twice restores the original state", func(t *testing.T) {
		repo, uow, _, svc := newDonationFixture()
		donation := &model.Donation{ID: 8, Title: "Generator fund", IsCompleted: false}
		repo.On("GetByID", mock.Anything, 8).Return(donation, nil)
		repo.On("NewUnitOfWork").Return(uow)
		repo.On("Update", uow, donation).Return()
		uow.On("Save", mock.Anything).Return(int64(1), nil)

		ok, err := svc.ToggleCompletion(context.Background(), 8)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, donation.IsCompleted)

		ok, err = svc.ToggleCompletion(context.Background(), 8)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, donation.IsCompleted)
	})
}

func TestDonationService_UpdateImage(t *testing.T) {
	t.Run("missing campaign reports false without error", func(t *testing.T) {
		repo, _, _, svc := newDonationFixture()
		repo.On("GetByID", mock.Anything, 3).Return(nil, nil)

		ok, err := svc.UpdateImage(context.Background(), 3, "/uploads/reports/2026/08/abc.jpg")

		assert.NoError(t, err)
		assert.False(t, ok)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("stores the new path", func(t *testing.T) {
		repo, uow, _, svc := newDonationFixture()
		donation := &model.Donation{ID: 3, Title: "Generator fund", Img: "/uploads/reports/2026/07/old.jpg"}
		repo.On("GetByID", mock.Anything, 3).Return(donation, nil)
		repo.On("NewUnitOfWork").Return(uow)
		repo.On("Update", uow, donation).Return()
		uow.On("Save", mock.Anything).Return(int64(1), nil)

		ok, err := svc.UpdateImage(context.Background(), 3, "/uploads/reports/2026/08/new.jpg")

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "/uploads/reports/2026/08/new.jpg", donation.Img)
	})
}

func TestDonationService_ReportsByDonation(t *testing.T) {
	_, _, reports, svc := newDonationFixture()
	expected := []model.Report{{ID: 1, DonationID: 4}, {ID: 2, DonationID: 4}}
	reports.On("ByDonation", mock.Anything, 4).Return(expected, nil)

	got, err := svc.ReportsByDonation(context.Background(), 4)

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}
