package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is the durable receipt of a checkout. TotalAmount is computed once at
// placement and never recomputed.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"not null;index" json:"userId"`
	TotalAmount float64     `gorm:"not null" json:"totalAmount"`
	Status      string      `gorm:"not null;default:pending" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OrderItem pins PriceAtPurchase, copied from the cart line's PriceAtAddition
// at order creation. It never changes afterwards.
type OrderItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OrderID         uint      `gorm:"not null;index" json:"orderId"`
	ProductID       uint      `gorm:"not null" json:"productId"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	PriceAtPurchase float64   `gorm:"not null" json:"priceAtPurchase"`
	Product         *Product  `json:"product,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (OrderItem) TableName() string { return "order_items" }
