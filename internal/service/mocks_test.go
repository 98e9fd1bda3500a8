package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"brigade/internal/dto"
	"brigade/internal/model"
	"brigade/internal/repository"
)

// MockUnitOfWork is a mock implementation of repository.UnitOfWork.
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Enlist(op repository.Op) {
	m.Called(op)
}

func (m *MockUnitOfWork) Save(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRepository is a mock implementation of repository.Repository. Create
// and Update echo the entity back the way the real repository does.
type MockRepository[T model.Entity] struct {
	mock.Mock
}

func (m *MockRepository[T]) NewUnitOfWork() repository.UnitOfWork {
	args := m.Called()
	return args.Get(0).(repository.UnitOfWork)
}

func (m *MockRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) GetByCondition(ctx context.Context, query string, queryArgs ...interface{}) (*T, error) {
	args := m.Called(ctx, query, queryArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) GetAllByCondition(ctx context.Context, query string, queryArgs ...interface{}) ([]T, error) {
	args := m.Called(ctx, query, queryArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Create(uow repository.UnitOfWork, entity *T) *T {
	m.Called(uow, entity)
	return entity
}

func (m *MockRepository[T]) Update(uow repository.UnitOfWork, entity *T) *T {
	m.Called(uow, entity)
	return entity
}

func (m *MockRepository[T]) Delete(uow repository.UnitOfWork, entity *T) {
	m.Called(uow, entity)
}

// MockUserRepository adds the username lookup.
type MockUserRepository struct {
	MockRepository[model.User]
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockReportService is a mock implementation of ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetAll(ctx context.Context) ([]model.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockReportService) GetByID(ctx context.Context, id int) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportService) Create(ctx context.Context, payload dto.ReportCreateModel) (*model.Report, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportService) Update(ctx context.Context, payload dto.ReportUpdateModel) (*model.Report, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportService) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportService) UpdateImage(ctx context.Context, id int, url string) (bool, error) {
	args := m.Called(ctx, id, url)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportService) ByDonation(ctx context.Context, donationID int) ([]model.Report, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}
