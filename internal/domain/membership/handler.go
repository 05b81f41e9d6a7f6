package membership

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) AddFavorite(c *gin.Context) { h.add(c, KindFavorite) }
func (h *Handler) AddToCart(c *gin.Context)   { h.add(c, KindCart) }

func (h *Handler) RemoveFavorite(c *gin.Context) { h.remove(c, KindFavorite) }
func (h *Handler) RemoveFromCart(c *gin.Context) { h.remove(c, KindCart) }

func (h *Handler) add(c *gin.Context, kind Kind) {
	userID, _ := middleware.RequesterID(c)

	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	short, err := h.service.Add(c.Request.Context(), kind, userID, recipeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecipeMissing):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
		case errors.Is(err, ErrAlreadyExists):
			response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", "Recipe is already in the list")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add recipe")
		}
		return
	}

	response.Success(c, http.StatusCreated, short)
}

func (h *Handler) remove(c *gin.Context, kind Kind) {
	userID, _ := middleware.RequesterID(c)

	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	if err := h.service.Remove(c.Request.Context(), kind, userID, recipeID); err != nil {
		switch {
		case errors.Is(err, ErrRecipeMissing):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
		case errors.Is(err, ErrNoSuchEntry):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe is not in the list")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove recipe")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
