package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/user"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Subscribe(c *gin.Context) {
	followerID, _ := middleware.RequesterID(c)

	authorID, ok := authorID(c)
	if !ok {
		return
	}

	view, err := h.service.Subscribe(c.Request.Context(), followerID, authorID, recipesLimit(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfSubscription):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed",
				map[string]string{"author": err.Error()})
		case errors.Is(err, ErrDuplicateSubscription):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed",
				map[string]string{"author": err.Error()})
		case errors.Is(err, user.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to subscribe")
		}
		return
	}

	response.Success(c, http.StatusCreated, view)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	followerID, _ := middleware.RequesterID(c)

	authorID, ok := authorID(c)
	if !ok {
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), followerID, authorID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			// отписка без подписки — ошибка запроса, не отсутствие ресурса
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed",
				map[string]string{"author": err.Error()})
		case errors.Is(err, user.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to unsubscribe")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) List(c *gin.Context) {
	followerID, _ := middleware.RequesterID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	views, total, err := h.service.List(c.Request.Context(), followerID, recipesLimit(c), limit, (page-1)*limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list subscriptions")
		return
	}

	response.Paginated(c, total, views)
}

func authorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return 0, false
	}
	return id, true
}

// recipesLimit читает необязательный кап на количество рецептов автора.
func recipesLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("recipes_limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
