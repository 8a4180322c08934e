package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora_back_end/internal/models"
)

func f64(v float64) *float64 { return &v }

func TestProductListFilters(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	category := &models.Category{Name: "Phones"}
	require.NoError(t, r.Categories.Create(ctx, category))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cheap := seedProductAt(t, r, "Budget Phone", 99, 5, base)
	cheap.CategoryID = &category.ID
	require.NoError(t, r.Products.Save(ctx, cheap))
	seedProductAt(t, r, "Mid Phone", 499, 5, base.Add(time.Hour))
	seedProductAt(t, r, "Laptop", 1299, 5, base.Add(2*time.Hour))

	t.Run("price bounds are inclusive", func(t *testing.T) {
		page, err := r.Products.List(ctx, ProductFilter{MinPrice: f64(99), MaxPrice: f64(499)})
		require.NoError(t, err)
		assert.EqualValues(t, 2, page.Meta.Total)
	})

	t.Run("category exact match", func(t *testing.T) {
		page, err := r.Products.List(ctx, ProductFilter{CategoryID: &category.ID})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, cheap.ID, page.Data[0].ID)
		require.NotNil(t, page.Data[0].Category)
		assert.Equal(t, "Phones", page.Data[0].Category.Name)
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		page, err := r.Products.List(ctx, ProductFilter{Search: "phone"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, page.Meta.Total)

		page, err = r.Products.List(ctx, ProductFilter{Search: "LAPTOP"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Laptop", page.Data[0].Name)
	})

	t.Run("newest first", func(t *testing.T) {
		page, err := r.Products.List(ctx, ProductFilter{})
		require.NoError(t, err)
		require.Len(t, page.Data, 3)
		assert.Equal(t, "Laptop", page.Data[0].Name)
		assert.Equal(t, "Mid Phone", page.Data[1].Name)
		assert.Equal(t, "Budget Phone", page.Data[2].Name)
	})
}

func TestProductListPagination(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedProductAt(t, r, "Item", 10, 1, base.Add(time.Duration(i)*time.Minute))
	}

	page, err := r.Products.List(ctx, ProductFilter{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 25, page.Meta.Total)
	assert.Equal(t, 3, page.Meta.Page)
	assert.Equal(t, 10, page.Meta.PageSize)
	assert.Equal(t, 3, page.Meta.Pages)
	assert.Len(t, page.Data, 5)

	// defaults: page 1, size 10
	page, err = r.Products.List(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Meta.Page)
	assert.Len(t, page.Data, 10)
}

func TestProductDecrementStock(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	product := seedProduct(t, r, "Phone", 499, 10)
	require.NoError(t, r.Products.DecrementStock(ctx, product.ID, 4))

	got, err := r.Products.ByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Stock)

	err = r.Products.DecrementStock(ctx, 9999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductDeleteNotFound(t *testing.T) {
	r, _ := newTestRepos(t)
	err := r.Products.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
