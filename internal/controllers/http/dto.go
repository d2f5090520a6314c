package http

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// AddCartItemRequest.Quantity is a pointer so an absent field can default to 1
// while an explicit 0 is rejected.
type AddCartItemRequest struct {
	ProductID uint64 `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type AddWishlistRequest struct {
	ProductID uint64 `json:"productId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID uint64 `json:"OrderID"`
}
