package repository

import (
	"context"
	"math"
	"strings"

	"gorm.io/gorm"

	"velora_back_end/internal/models"
)

const DefaultPageSize = 10

// ProductFilter is the query contract of GET /api/products. Price bounds are
// inclusive and apply to the current price; Search matches the name
// case-insensitively as a substring.
type ProductFilter struct {
	MinPrice   *float64
	MaxPrice   *float64
	CategoryID *uint
	Search     string
	Page       int
	PageSize   int
}

type PageMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Pages    int   `json:"pages"`
}

type ProductPage struct {
	Meta PageMeta         `json:"meta"`
	Data []models.Product `json:"data"`
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	ByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, filter ProductFilter) (*ProductPage, error)
	DecrementStock(ctx context.Context, id uint, quantity int) error
}

type productRepository struct {
	db *gorm.DB
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) ByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) (*ProductPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	q := r.db.WithContext(ctx).Model(&models.Product{})
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var products []models.Product
	err := q.Session(&gorm.Session{}).Preload("Category").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Meta: PageMeta{
			Total:    total,
			Page:     page,
			PageSize: pageSize,
			Pages:    int(math.Ceil(float64(total) / float64(pageSize))),
		},
		Data: products,
	}, nil
}

// DecrementStock subtracts quantity from the product's stock as a single
// relative UPDATE, so concurrent checkouts inside their own transactions
// cannot overwrite each other's decrement.
func (r *productRepository) DecrementStock(ctx context.Context, id uint, quantity int) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
