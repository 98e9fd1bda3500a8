package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"brigade/internal/model"
)

// Repository is the generic per-entity data access contract. Reads hit the
// store directly; writes are staged on a UnitOfWork supplied by the caller
// and take effect only when it is saved. Lookups that find nothing return
// a nil entity, not an error.
type Repository[T model.Entity] interface {
	NewUnitOfWork() UnitOfWork
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	GetByCondition(ctx context.Context, query string, args ...interface{}) (*T, error)
	GetAllByCondition(ctx context.Context, query string, args ...interface{}) ([]T, error)
	Create(uow UnitOfWork, entity *T) *T
	Update(uow UnitOfWork, entity *T) *T
	Delete(uow UnitOfWork, entity *T)
}

type gormRepository[T model.Entity] struct {
	db *gorm.DB
}

// New builds a GORM-backed repository for one entity type.
func New[T model.Entity](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

func (r *gormRepository[T]) NewUnitOfWork() UnitOfWork {
	return newGormUnitOfWork(r.db)
}

func (r *gormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *gormRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *gormRepository[T]) GetByCondition(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *gormRepository[T]) GetAllByCondition(ctx context.Context, query string, args ...interface{}) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(query, args...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *gormRepository[T]) Create(uow UnitOfWork, entity *T) *T {
	uow.Enlist(func(tx *gorm.DB) (int64, error) {
		res := tx.Create(entity)
		return res.RowsAffected, res.Error
	})
	return entity
}

func (r *gormRepository[T]) Update(uow UnitOfWork, entity *T) *T {
	uow.Enlist(func(tx *gorm.DB) (int64, error) {
		res := tx.Save(entity)
		return res.RowsAffected, res.Error
	})
	return entity
}

func (r *gormRepository[T]) Delete(uow UnitOfWork, entity *T) {
	uow.Enlist(func(tx *gorm.DB) (int64, error) {
		res := tx.Delete(entity)
		return res.RowsAffected, res.Error
	})
}
