package cart

import (
	"errors"
	"net/http"

	"aacorner/internal/domain/cart"
	"aacorner/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cart", h.Get)
	rg.GET("/cart/count", h.Count)
	rg.POST("/cart/add", h.Add)
	rg.POST("/cart/remove", h.Remove)
	rg.POST("/cart/clear", h.Clear)
}

func (h *Handler) Get(c *gin.Context) {
	sum, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load cart")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":          sum.Cart.Items,
		"subtotal":       sum.Subtotal,
		"total_quantity": sum.TotalQuantity,
	})
}

func (h *Handler) Count(c *gin.Context) {
	sum, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load cart")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": sum.TotalQuantity})
}

func (h *Handler) Add(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	// demo-friendly defaults, matching the storefront clients
	if req.Action == "" {
		req.Action = cart.ActionBuy
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sum, err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item type, action or quantity")
		case errors.Is(err, cart.ErrItemNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Item not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add item")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"count":    sum.TotalQuantity,
		"subtotal": sum.Subtotal,
	})
}

func (h *Handler) Remove(c *gin.Context) {
	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "key required")
		return
	}

	sum, removed, err := h.service.Remove(c.Request.Context(), c.GetInt64("user_id"), req.Key)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove item")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"removed":  removed,
		"count":    sum.TotalQuantity,
		"subtotal": sum.Subtotal,
	})
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to clear cart")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": 0, "subtotal": 0.0})
}
