package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"shop-service/internal/config"
	"shop-service/internal/domain"
	"shop-service/internal/services"
)

type Services struct {
	Users    *services.UserService
	Catalog  *services.CatalogService
	Carts    *services.CartService
	Orders   *services.OrderService
	Wishlist *services.WishlistService
}

type Handler struct {
	svc    Services
	tokens TokenVerifier
	rdb    *redis.Client
	limit  config.RateLimitConfig
}

// NewHandler wires the services to gin. rdb may be nil, which disables rate
// limiting.
func NewHandler(svc Services, tokens TokenVerifier, rdb *redis.Client, limit config.RateLimitConfig) *Handler {
	return &Handler{svc: svc, tokens: tokens, rdb: rdb, limit: limit}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	r.GET("/healthz", h.Health)

	api := r.Group("/api")

	authRoutes := api.Group("/auth", RateLimit(h.rdb, "auth", h.limit.Requests, h.limit.Window))
	authRoutes.POST("/register", h.Register)
	authRoutes.POST("/login", h.Login)

	api.GET("/categories", h.ListCategories)
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/products/:id/reviews", h.ListReviews)

	protected := api.Group("", RequireAuth(h.tokens))
	protected.GET("/cart", h.GetCart)
	protected.POST("/cart", h.AddToCart)
	protected.DELETE("/cart/item/:id", h.RemoveFromCart)

	protected.GET("/wishlist", h.GetWishlist)
	protected.POST("/wishlist", h.AddToWishlist)
	protected.DELETE("/wishlist/:productId", h.RemoveFromWishlist)

	protected.POST("/orders", h.PlaceOrder)
	protected.GET("/orders", h.ListOrders)
	protected.GET("/orders/:id", h.GetOrder)

	protected.DELETE("/account", h.DeleteAccount)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.svc.Users.Register(c.Request.Context(), services.RegisterInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: fmt.Sprintf("User %s registered successfully.", user.Name)})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.ErrInvalidCredentials)
		return
	}

	token, err := h.svc.Users.Login(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{AccessToken: token})
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.svc.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) ListProducts(c *gin.Context) {
	var filter domain.ProductFilter
	if raw := c.Query("category"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
			return
		}
		filter.CategoryID = categoryID
	}
	filter.Search = c.Query("search")

	products, err := h.svc.Catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.svc.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) ListReviews(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.svc.Catalog.ListReviews(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) GetCart(c *gin.Context) {
	lines, err := h.svc.Carts.GetCart(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, err := h.svc.Carts.AddItem(c.Request.Context(), currentUserID(c), services.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Item added to cart"})
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Carts.RemoveItem(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Item removed from cart"})
}

func (h *Handler) GetWishlist(c *gin.Context) {
	products, err := h.svc.Wishlist.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) AddToWishlist(c *gin.Context) {
	var req AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.Wishlist.Add(c.Request.Context(), currentUserID(c), req.ProductID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Added to wishlist"})
}

func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	if err := h.svc.Wishlist.Remove(c.Request.Context(), currentUserID(c), productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Removed from wishlist"})
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	order, err := h.svc.Orders.PlaceOrder(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, PlaceOrderResponse{Message: "Order placed successfully!", OrderID: order.ID})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.svc.Orders.ListOrders(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.svc.Orders.GetOrder(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.svc.Users.DeleteAccount(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Account deleted"})
}

// pathID parses a positive numeric path parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
