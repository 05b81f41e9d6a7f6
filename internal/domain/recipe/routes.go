package recipe

import "github.com/gin-gonic/gin"

// RegisterRoutes вешает чтение на публичную группу, запись — на защищённую.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, protected *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", h.GetByID)
	}

	writes := protected.Group("/recipes")
	{
		writes.POST("", h.Create)
		writes.PATCH("/:id", h.Update)
		writes.DELETE("/:id", h.Delete)
	}
}
