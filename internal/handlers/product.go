package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
)

type ProductHandler struct {
	products repository.ProductRepository
	uploader ImageUploader
}

type productCreateInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
	CategoryID  *uint    `json:"categoryId"`
	Image       string   `json:"image"`
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input productCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	ctx := c.Request.Context()

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Stock:       *input.Stock,
		CategoryID:  input.CategoryID,
	}

	if input.Image != "" {
		url, err := h.uploader.UploadImage(ctx, input.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
			return
		}
		product.ImageURL = url
	}

	if err := h.products.Create(ctx, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "data": product})
}

type productUpdateInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	CategoryID  *uint    `json:"categoryId"`
	Image       string   `json:"image"`
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	product, err := h.products.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	var input productUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Image != "" {
		url, err := h.uploader.UploadImage(ctx, input.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
			return
		}
		product.ImageURL = url
	}

	if err := h.products.Save(ctx, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "data": product})
}

// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := h.products.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete product"})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Product deleted successfully"})
}

type productListQuery struct {
	MinPrice   *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice   *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	CategoryID *uint    `form:"categoryId"`
	Search     string   `form:"search"`
	Page       int      `form:"page" binding:"omitempty,gte=1"`
	PageSize   int      `form:"pageSize" binding:"omitempty,gte=1,lte=100"`
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	var query productListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	page, err := h.products.List(c.Request.Context(), repository.ProductFilter{
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		CategoryID: query.CategoryID,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list products"})
		return
	}
	if page.Data == nil {
		page.Data = []models.Product{}
	}
	c.JSON(http.StatusOK, page)
}
