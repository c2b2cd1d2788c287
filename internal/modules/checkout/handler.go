package checkout

import (
	"errors"
	"net/http"

	"aacorner/internal/pkg/response"
	"aacorner/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cart/checkout", h.Checkout)
	rg.GET("/orders", h.History)
}

func (h *Handler) Checkout(c *gin.Context) {
	// buyer/payment info is optional in the demo flow
	var req CheckoutRequest
	_ = c.ShouldBindJSON(&req)

	if fields := validator.Validate(req.Buyer); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid buyer info", fields)
		return
	}

	o, err := h.service.Checkout(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			response.Error(c, http.StatusBadRequest, "EMPTY_CART", "Cart is empty")
		case errors.Is(err, ErrPersistence):
			response.Error(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", "Failed to record purchase")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Checkout failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"order_id": o.ID,
		"ref":      o.Ref,
		"total":    o.TotalAmount,
		"message":  "Checkout complete. Thank you!",
	})
}

func (h *Handler) History(c *gin.Context) {
	orders, err := h.service.History(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load purchase history")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}
