package models

import "time"

// CartItem is one cart line. PriceAtAddition is snapshotted when the line is
// first created and never rewritten, so later catalog price changes do not
// move the cart total.
type CartItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID       uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity        int       `gorm:"not null;default:1;check:quantity >= 1" json:"quantity"`
	PriceAtAddition float64   `gorm:"not null" json:"priceAtAddition"`
	User            *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product         *Product  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (CartItem) TableName() string { return "cart_items" }

// CartLine is a cart item joined with its product projection, as returned by
// GET /api/cart.
type CartLine struct {
	CartItem
	Product ProductSummary `json:"product"`
}

func (l CartLine) Subtotal() float64 {
	return l.PriceAtAddition * float64(l.Quantity)
}
