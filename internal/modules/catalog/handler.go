package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"aacorner/internal/domain/catalog"
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
	rg.GET("/books", h.ListBooks)
	rg.GET("/books/:id", h.GetBook)
	rg.GET("/games", h.ListGames)
	rg.GET("/games/:id", h.GetGame)
}

func (h *Handler) ListBooks(c *gin.Context) {
	f := catalog.BookFilters{
		Category: c.Query("category"),
		Genre:    c.Query("genre"),
		Search:   c.Query("search"),
	}

	books, err := h.service.ListBooks(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load books")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"books": books})
}

func (h *Handler) GetBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id")
		return
	}

	b, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Book not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load book")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"book": b})
}

func (h *Handler) ListGames(c *gin.Context) {
	games, err := h.service.ListGames(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load games")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"games": games})
}

func (h *Handler) GetGame(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid game id")
		return
	}

	g, err := h.service.GetGame(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Game not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load game")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"game": g})
}
