package service

import (
	"context"
	"fmt"

	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
)

// CheckoutService converts a user's cart into a persisted order. The whole
// conversion runs inside one database transaction: stock validation, order
// and order item creation, stock decrement and cart clearing either all
// become visible together or not at all.
type CheckoutService struct {
	repos *repository.Repositories
}

func NewCheckoutService(repos *repository.Repositories) *CheckoutService {
	return &CheckoutService{repos: repos}
}

// PlaceOrder places an order for everything currently in the user's cart.
//
// Stock is checked against the values read inside the transaction, and the
// total is computed from each line's PriceAtAddition snapshot; the live
// product price never enters the calculation. Each order item pins
// PriceAtPurchase from that same snapshot. Any error rolls the entire
// transaction back before it reaches the caller.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint) (*models.Order, error) {
	var placed *models.Order

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		items, err := tx.Carts.ItemsForUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("load cart: %w", err)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		for _, it := range items {
			if it.Product == nil {
				return fmt.Errorf("cart line %d: %w", it.ID, repository.ErrNotFound)
			}
			if it.Quantity > it.Product.Stock {
				return &InsufficientStockError{ProductName: it.Product.Name}
			}
		}

		var total float64
		for _, it := range items {
			total += it.PriceAtAddition * float64(it.Quantity)
		}

		order := &models.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
		}
		if err := tx.Orders.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for _, it := range items {
			item := &models.OrderItem{
				OrderID:         order.ID,
				ProductID:       it.ProductID,
				Quantity:        it.Quantity,
				PriceAtPurchase: it.PriceAtAddition,
			}
			if err := tx.Orders.CreateItem(ctx, item); err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
			if err := tx.Products.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				return fmt.Errorf("decrement stock for product %d: %w", it.ProductID, err)
			}
			order.Items = append(order.Items, *item)
		}

		if err := tx.Carts.ClearUser(ctx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}
