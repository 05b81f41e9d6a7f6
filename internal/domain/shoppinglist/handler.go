package shoppinglist

import (
	"errors"
	"net/http"

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

// Download отдаёт агрегированный список покупок текстовым вложением.
func (h *Handler) Download(c *gin.Context) {
	userID, _ := middleware.RequesterID(c)

	text, err := h.service.Compose(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			response.Error(c, http.StatusBadRequest, "EMPTY_CART", "Shopping cart is empty")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compose shopping list")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=shopping_list.txt`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
