package service

import (
	"context"
	"fmt"
	"time"

	"brigade/internal/apperr"
	"brigade/internal/cache"
	"brigade/internal/dto"
	"brigade/internal/model"
	"brigade/internal/repository"
)

const entityCacheTTL = 5 * time.Minute

// CrudService implements the shared create/read/update/delete flow for one
// entity type. Mapping between wire models and entities is injected as
// explicit functions; there is no reflection anywhere in the path.
type CrudService[T model.Entity, C any, U dto.UpdateModel] struct {
	repo        repository.Repository[T]
	cache       *cache.Client
	cachePrefix string
	fromCreate  func(C) *T
	applyUpdate func(U, *T)
}

// NewCrudService wires a generic CRUD service over one repository.
func NewCrudService[T model.Entity, C any, U dto.UpdateModel](
	repo repository.Repository[T],
	cache *cache.Client,
	cachePrefix string,
	fromCreate func(C) *T,
	applyUpdate func(U, *T),
) *CrudService[T, C, U] {
	return &CrudService[T, C, U]{
		repo:        repo,
		cache:       cache,
		cachePrefix: cachePrefix,
		fromCreate:  fromCreate,
		applyUpdate: applyUpdate,
	}
}

func (s *CrudService[T, C, U]) cacheKey(id int) string {
	return fmt.Sprintf("%s:%d", s.cachePrefix, id)
}

func (s *CrudService[T, C, U]) invalidate(ctx context.Context, id int) {
	s.cache.Delete(ctx, s.cacheKey(id))
}

// GetAll returns every row in the store's natural order.
func (s *CrudService[T, C, U]) GetAll(ctx context.Context) ([]T, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns the entity or nil when absent, with a read-through cache.
func (s *CrudService[T, C, U]) GetByID(ctx context.Context, id int) (*T, error) {
	var cached T
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil || entity == nil {
		return entity, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), entity, entityCacheTTL)
	return entity, nil
}

// Create maps the payload to a fresh entity, inserts it and commits.
func (s *CrudService[T, C, U]) Create(ctx context.Context, m C) (*T, error) {
	entity := s.fromCreate(m)

	uow := s.repo.NewUnitOfWork()
	created := s.repo.Create(uow, entity)
	if created == nil {
		return nil, apperr.ErrCreateFailed
	}
	if _, err := uow.Save(ctx); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.cachePrefix, err)
	}

	s.invalidate(ctx, (*created).EntityID())
	return created, nil
}

// Update loads the targeted entity, copies every settable field from the
// payload onto it and commits. The commit must touch exactly one row.
func (s *CrudService[T, C, U]) Update(ctx context.Context, m U) (*T, error) {
	entity, err := s.repo.GetByID(ctx, m.ModelID())
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperr.ErrNotFound
	}

	s.applyUpdate(m, entity)

	uow := s.repo.NewUnitOfWork()
	s.repo.Update(uow, entity)
	affected, err := uow.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", s.cachePrefix, err)
	}
	if affected != 1 {
		return nil, apperr.ErrUpdateFailed
	}

	s.invalidate(ctx, m.ModelID())
	return entity, nil
}

// Delete removes the row if it exists. A missing id counts as already
// deleted and succeeds.
func (s *CrudService[T, C, U]) Delete(ctx context.Context, id int) (bool, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if entity == nil {
		return true, nil
	}

	uow := s.repo.NewUnitOfWork()
	s.repo.Delete(uow, entity)
	if _, err := uow.Save(ctx); err != nil {
		return false, err
	}

	s.invalidate(ctx, id)
	return true, nil
}
