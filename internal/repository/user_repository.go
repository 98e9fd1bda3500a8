package repository

import (
	"context"

	"gorm.io/gorm"

	"brigade/internal/model"
)

// UserRepository adds the exact-username lookup used by authentication.
type UserRepository interface {
	Repository[model.User]
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	gormRepository[model.User]
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{gormRepository[model.User]{db: db}}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.GetByCondition(ctx, "username = ?", username)
}
