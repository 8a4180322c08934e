package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
)

type CartHandler struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

type addToCartInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,gte=1"`
}

// POST /api/cart. Re-adding a product increments the existing line's
// quantity; priceAtAddition keeps its original snapshot.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input addToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	ctx := c.Request.Context()
	userID := c.GetUint("user_id")

	product, err := h.products.ByID(ctx, input.ProductID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not add to cart"})
		return
	}

	item, err := h.carts.ByUserAndProduct(ctx, userID, input.ProductID)
	switch {
	case err == nil:
		item.Quantity += input.Quantity
		err = h.carts.Save(ctx, item)
	case errors.Is(err, repository.ErrNotFound):
		item = &models.CartItem{
			UserID:          userID,
			ProductID:       input.ProductID,
			Quantity:        input.Quantity,
			PriceAtAddition: product.Price,
		}
		err = h.carts.Create(ctx, item)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not add to cart"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart successfully", "data": item})
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.carts.ItemsForUser(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load cart"})
		return
	}

	lines := make([]models.CartLine, 0, len(items))
	var total float64
	for _, it := range items {
		line := models.CartLine{CartItem: it}
		if it.Product != nil {
			line.Product = it.Product.Summary()
		}
		lines = append(lines, line)
		total += line.Subtotal()
	}

	c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
}

// DELETE /api/cart/:id
//
// Success responds 204 with a JSON body. Nonstandard, but it is the wire
// format clients already depend on.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := h.carts.DeleteOwned(c.Request.Context(), c.GetUint("user_id"), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not remove item"})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Item removed from cart successfully"})
}
