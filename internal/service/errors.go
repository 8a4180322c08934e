package service

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned by PlaceOrder when the user has no cart lines.
var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// InsufficientStockError names the first product whose requested quantity
// exceeds the available stock. The check is fail-fast: the first violation
// aborts the checkout, remaining lines are not inspected.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s", e.ProductName)
}
