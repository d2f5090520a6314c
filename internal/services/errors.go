package services

import "shop-service/internal/domain"

var (
	ErrMissingFields      = domain.Validation("missing required fields")
	ErrPasswordTooLong    = domain.Validation("password is too long")
	ErrEmailTaken         = domain.Conflict("email already registered")
	ErrInvalidCredentials = domain.Unauthorized("invalid email or password")
	ErrUserNotFound       = domain.NotFound("user not found")

	ErrProductIDRequired = domain.Validation("product ID is required")
	ErrInvalidQuantity   = domain.Validation("quantity must be at least 1")
	ErrQuantityTooLarge  = domain.Validation("quantity is too large")
	ErrProductNotFound   = domain.NotFound("product not found")
	ErrCartNotFound      = domain.NotFound("cart not found")
	ErrCartItemNotFound  = domain.NotFound("item not found in cart")

	ErrEmptyCart     = domain.Validation("cart is empty")
	ErrOrderNotFound = domain.NotFound("order not found")
)
