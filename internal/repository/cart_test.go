package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora_back_end/internal/models"
)

func TestCartByUserAndProduct(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	user := seedUser(t, r, "cart@example.com", models.RoleCustomer)
	product := seedProduct(t, r, "Phone", 499, 10)

	_, err := r.Carts.ByUserAndProduct(ctx, user.ID, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	item := &models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2, PriceAtAddition: product.Price}
	require.NoError(t, r.Carts.Create(ctx, item))

	found, err := r.Carts.ByUserAndProduct(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)
	assert.Equal(t, 2, found.Quantity)
	assert.Equal(t, 499.0, found.PriceAtAddition)
}

func TestCartItemsForUserPreloadsProduct(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	user := seedUser(t, r, "cart@example.com", models.RoleCustomer)
	other := seedUser(t, r, "other@example.com", models.RoleCustomer)
	product := seedProduct(t, r, "Phone", 499, 10)

	require.NoError(t, r.Carts.Create(ctx, &models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1, PriceAtAddition: 499}))
	require.NoError(t, r.Carts.Create(ctx, &models.CartItem{UserID: other.ID, ProductID: product.ID, Quantity: 3, PriceAtAddition: 499}))

	items, err := r.Carts.ItemsForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Phone", items[0].Product.Name)
	assert.Equal(t, 10, items[0].Product.Stock)
}

func TestCartDeleteOwnedEnforcesOwnership(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	owner := seedUser(t, r, "owner@example.com", models.RoleCustomer)
	stranger := seedUser(t, r, "stranger@example.com", models.RoleCustomer)
	product := seedProduct(t, r, "Phone", 499, 10)

	item := &models.CartItem{UserID: owner.ID, ProductID: product.ID, Quantity: 1, PriceAtAddition: 499}
	require.NoError(t, r.Carts.Create(ctx, item))

	// someone else's item id -> NotFound, row survives
	err := r.Carts.DeleteOwned(ctx, stranger.ID, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	items, err := r.Carts.ItemsForUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, r.Carts.DeleteOwned(ctx, owner.ID, item.ID))

	items, err = r.Carts.ItemsForUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartClearUser(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	user := seedUser(t, r, "cart@example.com", models.RoleCustomer)
	keep := seedUser(t, r, "keep@example.com", models.RoleCustomer)
	p1 := seedProduct(t, r, "Phone", 499, 10)
	p2 := seedProduct(t, r, "Case", 19, 50)

	require.NoError(t, r.Carts.Create(ctx, &models.CartItem{UserID: user.ID, ProductID: p1.ID, Quantity: 1, PriceAtAddition: 499}))
	require.NoError(t, r.Carts.Create(ctx, &models.CartItem{UserID: user.ID, ProductID: p2.ID, Quantity: 2, PriceAtAddition: 19}))
	require.NoError(t, r.Carts.Create(ctx, &models.CartItem{UserID: keep.ID, ProductID: p1.ID, Quantity: 1, PriceAtAddition: 499}))

	require.NoError(t, r.Carts.ClearUser(ctx, user.ID))

	items, err := r.Carts.ItemsForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	kept, err := r.Carts.ItemsForUser(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}
