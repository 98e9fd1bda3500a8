package service

import (
	"context"

	"brigade/internal/cache"
	"brigade/internal/dto"
	"brigade/internal/model"
	"brigade/internal/repository"
)

// VacancyService exposes vacancy operations. Vacancies are plain CRUD with
// nothing on top.
type VacancyService interface {
	GetAll(ctx context.Context) ([]model.Vacancy, error)
	GetByID(ctx context.Context, id int) (*model.Vacancy, error)
	Create(ctx context.Context, m dto.VacancyCreateModel) (*model.Vacancy, error)
	Update(ctx context.Context, m dto.VacancyUpdateModel) (*model.Vacancy, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type vacancyService struct {
	*CrudService[model.Vacancy, dto.VacancyCreateModel, dto.VacancyUpdateModel]
}

// NewVacancyService builds a vacancy service.
func NewVacancyService(repo repository.Repository[model.Vacancy], cache *cache.Client) VacancyService {
	return &vacancyService{
		NewCrudService(repo, cache, "vacancy", dto.VacancyCreateModel.ToEntity, dto.VacancyUpdateModel.Apply),
	}
}
