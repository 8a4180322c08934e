package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null;check:price >= 0" json:"price"`
	Stock       int       `gorm:"not null;check:stock >= 0" json:"stock"`
	ImageURL    string    `json:"imageUrl"`
	CategoryID  *uint     `json:"categoryId"`
	Category    *Category `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductSummary is the projection joined into cart listings:
// just enough to render a cart line, never the live price.
type ProductSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Stock    int    `json:"stock"`
}

func (p *Product) Summary() ProductSummary {
	return ProductSummary{ID: p.ID, Name: p.Name, ImageURL: p.ImageURL, Stock: p.Stock}
}
