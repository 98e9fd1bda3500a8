package repository

import (
	"context"

	"gorm.io/gorm"
)

// Op is a staged write, applied when the unit of work is saved.
type Op func(tx *gorm.DB) (int64, error)

// UnitOfWork collects staged writes and commits them together. One is
// created per service operation; nothing touches the store until Save.
type UnitOfWork interface {
	Enlist(op Op)
	// Save applies all staged operations in a single transaction and
	// returns the total number of affected rows. The unit of work is
	// drained afterwards regardless of outcome.
	Save(ctx context.Context) (int64, error)
}

type gormUnitOfWork struct {
	db  *gorm.DB
	ops []Op
}

func newGormUnitOfWork(db *gorm.DB) *gormUnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Enlist(op Op) {
	u.ops = append(u.ops, op)
}

func (u *gormUnitOfWork) Save(ctx context.Context) (int64, error) {
	ops := u.ops
	u.ops = nil
	if len(ops) == 0 {
		return 0, nil
	}

	var affected int64
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			n, err := op(tx)
			if err != nil {
				return err
			}
			affected += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
