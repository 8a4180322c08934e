package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora_back_end/internal/models"
)

func TestOrderListScoping(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	alice := seedUser(t, r, "alice@example.com", models.RoleCustomer)
	bob := seedUser(t, r, "bob@example.com", models.RoleCustomer)
	product := seedProduct(t, r, "Phone", 499, 10)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	first := &models.Order{UserID: alice.ID, TotalAmount: 499, Status: models.OrderStatusPending, CreatedAt: base}
	require.NoError(t, r.Orders.Create(ctx, first))
	require.NoError(t, r.Orders.CreateItem(ctx, &models.OrderItem{OrderID: first.ID, ProductID: product.ID, Quantity: 1, PriceAtPurchase: 499}))

	second := &models.Order{UserID: bob.ID, TotalAmount: 998, Status: models.OrderStatusPending, CreatedAt: base.Add(time.Hour)}
	require.NoError(t, r.Orders.Create(ctx, second))

	third := &models.Order{UserID: alice.ID, TotalAmount: 19, Status: models.OrderStatusPending, CreatedAt: base.Add(2 * time.Hour)}
	require.NoError(t, r.Orders.Create(ctx, third))

	t.Run("per user, newest first", func(t *testing.T) {
		orders, err := r.Orders.ListByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, third.ID, orders[0].ID)
		assert.Equal(t, first.ID, orders[1].ID)
	})

	t.Run("all orders, newest first", func(t *testing.T) {
		orders, err := r.Orders.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, third.ID, orders[0].ID)
		assert.Equal(t, second.ID, orders[1].ID)
		assert.Equal(t, first.ID, orders[2].ID)
	})

	t.Run("items and products are nested", func(t *testing.T) {
		orders, err := r.Orders.ListByUser(ctx, alice.ID)
		require.NoError(t, err)
		var withItems *models.Order
		for i := range orders {
			if orders[i].ID == first.ID {
				withItems = &orders[i]
			}
		}
		require.NotNil(t, withItems)
		require.Len(t, withItems.Items, 1)
		require.NotNil(t, withItems.Items[0].Product)
		assert.Equal(t, "Phone", withItems.Items[0].Product.Name)
		assert.Equal(t, 499.0, withItems.Items[0].PriceAtPurchase)
	})
}

func TestUserUpdatePassword(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	user := seedUser(t, r, "pw@example.com", models.RoleCustomer)
	require.NoError(t, r.Users.UpdatePassword(ctx, user.ID, "newhash"))

	got, err := r.Users.ByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", got.Password)

	err = r.Users.UpdatePassword(ctx, 9999, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}
