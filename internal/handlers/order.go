package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
	"velora_back_end/internal/service"
	"velora_back_end/internal/utils"
)

type OrderHandler struct {
	checkout *service.CheckoutService
	orders   repository.OrderRepository
	users    repository.UserRepository
	mailer   *utils.Mailer
}

// POST /api/orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID := c.GetUint("user_id")

	order, err := h.checkout.PlaceOrder(c.Request.Context(), userID)
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cart empty"})
		case errors.As(err, &stockErr):
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Not enough stock for %s", stockErr.ProductName)})
		default:
			log.Println("❌ placeOrder failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not place order"})
		}
		return
	}

	go h.sendConfirmation(userID, order)

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "data": order})
}

// sendConfirmation mails the receipt after the transaction committed.
// Best effort only: a mail failure never touches the order.
func (h *OrderHandler) sendConfirmation(userID uint, order *models.Order) {
	if h.mailer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	user, err := h.users.ByID(ctx, userID)
	if err != nil {
		log.Println("⚠️ order confirmation skipped:", err)
		return
	}
	if err := h.mailer.SendOrderConfirmation(user.Email, order); err != nil {
		log.Println("⚠️ order confirmation mail failed:", err)
	}
}

// GET /api/orders. Customers see their own orders, any other role sees all.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		orders []models.Order
		err    error
	)
	if c.GetString("role") == models.RoleCustomer {
		orders, err = h.orders.ListByUser(ctx, c.GetUint("user_id"))
	} else {
		orders, err = h.orders.ListAll(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list orders"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
