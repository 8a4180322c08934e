package handlers

import (
	"context"

	"velora_back_end/internal/cache"
	"velora_back_end/internal/repository"
	"velora_back_end/internal/service"
	"velora_back_end/internal/utils"
)

// ImageUploader is the asset store boundary: given an image payload it
// returns a durable hosted URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, payload string) (string, error)
}

// Set bundles every handler with its dependencies wired.
type Set struct {
	Auth       *AuthHandler
	Users      *UserHandler
	Categories *CategoryHandler
	Products   *ProductHandler
	Cart       *CartHandler
	Orders     *OrderHandler
}

func New(repos *repository.Repositories, uploader ImageUploader, tokens *cache.TokenStore, mailer *utils.Mailer) *Set {
	return &Set{
		Auth:       &AuthHandler{users: repos.Users, tokens: tokens},
		Users:      &UserHandler{users: repos.Users},
		Categories: &CategoryHandler{categories: repos.Categories},
		Products:   &ProductHandler{products: repos.Products, uploader: uploader},
		Cart:       &CartHandler{carts: repos.Carts, products: repos.Products},
		Orders: &OrderHandler{
			checkout: service.NewCheckoutService(repos),
			orders:   repos.Orders,
			users:    repos.Users,
			mailer:   mailer,
		},
	}
}
