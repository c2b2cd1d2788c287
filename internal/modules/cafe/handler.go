package cafe

import (
	"errors"
	"net/http"
	"strconv"

	"aacorner/internal/domain/cafe"
	"aacorner/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/cafe/availability", h.Availability)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cafe/reservations", h.CreateReservation)
	rg.GET("/cafe/reservations", h.MyReservations)
	rg.DELETE("/cafe/reservations/:id", h.CancelReservation)
}

func (h *Handler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	resp, err := h.service.Availability(c.Request.Context(), dateStr)
	if err != nil {
		if errors.Is(err, cafe.ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.CreateReservation(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeReservationError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"reservation": r})
}

func (h *Handler) MyReservations(c *gin.Context) {
	rows, err := h.service.MyReservations(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": rows})
}

func (h *Handler) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation id")
		return
	}

	r, err := h.service.CancelReservation(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeReservationError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) writeReservationError(c *gin.Context, err error) {
	var capErr *cafe.CapacityError
	switch {
	case errors.Is(err, cafe.ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation request")
	case errors.Is(err, cafe.ErrClosedDay):
		response.Error(c, http.StatusConflict, "CLOSED_DAY", "The cafe is closed on this day")
	case errors.Is(err, cafe.ErrMembersOnly):
		response.Error(c, http.StatusConflict, "MEMBERS_ONLY", "This day is reserved for members")
	case errors.As(err, &capErr):
		response.ErrorWithDetails(c, http.StatusConflict, "CAPACITY_EXCEEDED",
			"Not enough seats remaining for this time",
			gin.H{"remaining": capErr.Remaining, "capacity": capErr.Capacity})
	case errors.Is(err, cafe.ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "A concurrent booking interfered; please retry")
	case errors.Is(err, cafe.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
	case errors.Is(err, cafe.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Reservation belongs to another user")
	case errors.Is(err, cafe.ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Reservation is already cancelled")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Reservation operation failed")
	}
}
