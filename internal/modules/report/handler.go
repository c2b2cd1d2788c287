package report

import (
	"net/http"
	"strconv"

	"aacorner/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the reporting endpoints; the group is expected to
// carry the admin middleware.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/reports/sales", h.SalesByDay)
	admin.GET("/reports/reservations", h.ReservationStats)
	admin.GET("/reports/orders", h.RecentOrders)
}

func (h *Handler) SalesByDay(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	rows, err := h.service.SalesByDay(c.Request.Context(), days)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "Failed to build sales report")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"days": rows})
}

func (h *Handler) ReservationStats(c *gin.Context) {
	stats, err := h.service.ReservationStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "Failed to build reservation report")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) RecentOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	rows, err := h.service.RecentOrders(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "Failed to list recent orders")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": rows})
}
