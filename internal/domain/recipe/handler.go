package recipe

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	requesterID, _ := middleware.RequesterID(c)

	f := Filter{
		TagSlugs:    c.QueryArray("tags"),
		Favorited:   boolParam(c.Query("is_favorited")),
		InCart:      boolParam(c.Query("is_in_shopping_cart")),
		RequesterID: requesterID,
		Limit:       limit,
		Offset:      (page - 1) * limit,
	}
	if authorStr := c.Query("author"); authorStr != "" {
		authorID, err := strconv.ParseInt(authorStr, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid author ID")
			return
		}
		f.AuthorID = authorID
	}

	views, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list recipes")
		return
	}

	response.Paginated(c, total, views)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	requesterID, _ := middleware.RequesterID(c)

	view, err := h.service.Get(c.Request.Context(), requesterID, id)
	if err != nil {
		h.writeError(c, err, "Failed to get recipe")
		return
	}

	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Create(c *gin.Context) {
	requesterID, _ := middleware.RequesterID(c)

	req, ok := bindWriteRequest(c)
	if !ok {
		return
	}

	view, err := h.service.Create(c.Request.Context(), requesterID, req)
	if err != nil {
		h.writeError(c, err, "Failed to create recipe")
		return
	}

	response.Success(c, http.StatusCreated, view)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	requesterID, _ := middleware.RequesterID(c)

	req, ok := bindWriteRequest(c)
	if !ok {
		return
	}

	view, err := h.service.Update(c.Request.Context(), requesterID, id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update recipe")
		return
	}

	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	requesterID, _ := middleware.RequesterID(c)

	if err := h.service.Delete(c.Request.Context(), requesterID, id); err != nil {
		h.writeError(c, err, "Failed to delete recipe")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErr.Fields())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the author can modify this recipe")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func bindWriteRequest(c *gin.Context) (WriteRequest, bool) {
	var req WriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return req, false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return req, false
	}
	return req, true
}

func recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return 0, false
	}
	return id, true
}

func boolParam(v string) bool {
	return v == "1" || v == "true" || v == "True"
}
