package membership

import "github.com/gin-gonic/gin"

// RegisterRoutes вешает переключатели избранного и корзины
// на защищённую группу.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	recipes := protected.Group("/recipes/:id")
	{
		recipes.POST("/favorite", h.AddFavorite)
		recipes.DELETE("/favorite", h.RemoveFavorite)
		recipes.POST("/shopping_cart", h.AddToCart)
		recipes.DELETE("/shopping_cart", h.RemoveFromCart)
	}
}
