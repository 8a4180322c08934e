package routes

import (
	"github.com/gin-gonic/gin"

	"velora_back_end/internal/handlers"
	"velora_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Set) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	users := api.Group("/users", middleware.AuthRequired())
	{
		users.GET("/me", h.Users.Me)
		users.PUT("/password", h.Users.ChangePassword)
	}

	// Every category route is admin-only, listing included.
	categories := api.Group("/categories", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		categories.POST("", h.Categories.Create)
		categories.GET("", h.Categories.List)
		categories.PUT("/:id", h.Categories.Update)
		categories.DELETE("/:id", h.Categories.Delete)
	}

	products := api.Group("/products")
	{
		products.GET("", h.Products.List)
		products.POST("", middleware.AuthRequired(), middleware.RequireAdmin, h.Products.Create)
		products.PUT("/:id", middleware.AuthRequired(), middleware.RequireAdmin, h.Products.Update)
		products.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAdmin, h.Products.Delete)
	}

	cart := api.Group("/cart", middleware.AuthRequired())
	{
		cart.POST("", h.Cart.AddToCart)
		cart.GET("", h.Cart.GetCart)
		cart.DELETE("/:id", h.Cart.RemoveFromCart)
	}

	orders := api.Group("/orders", middleware.AuthRequired())
	{
		orders.POST("", h.Orders.PlaceOrder)
		orders.GET("", h.Orders.GetOrders)
	}
}
