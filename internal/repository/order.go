package repository

import (
	"context"

	"gorm.io/gorm"

	"velora_back_end/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	CreateItem(ctx context.Context, item *models.OrderItem) error
	// ListAll returns every order with nested items and products, newest
	// first. Used for non-customer roles.
	ListAll(ctx context.Context) ([]models.Order, error)
	// ListByUser is ListAll restricted to one user's orders.
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) CreateItem(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *orderRepository) list(_ context.Context, q *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := q.Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
