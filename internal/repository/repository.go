package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned whenever a referenced row does not exist or does
// not belong to the caller.
var ErrNotFound = errors.New("not found")

// Repositories bundles one typed repository per entity over a single
// injected *gorm.DB handle.
type Repositories struct {
	db *gorm.DB

	Users      UserRepository
	Categories CategoryRepository
	Products   ProductRepository
	Carts      CartRepository
	Orders     OrderRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		Users:      &userRepository{db: db},
		Categories: &categoryRepository{db: db},
		Products:   &productRepository{db: db},
		Carts:      &cartRepository{db: db},
		Orders:     &orderRepository{db: db},
	}
}

// Transaction runs fn with every repository rebound to the same database
// transaction. fn returning an error rolls everything back; otherwise the
// transaction commits when fn returns.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
