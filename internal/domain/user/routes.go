package user

import "github.com/gin-gonic/gin"

// RegisterRoutes вешает публичные маршруты пользователей и токен-эндпоинты.
// protected — группа с обязательной аутентификацией.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, protected *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.Register)
		users.GET("", h.List)
		users.GET("/:id", h.GetByID)
	}

	protected.GET("/users/me", h.Me)

	auth := rg.Group("/auth/token")
	{
		auth.POST("/login", h.Login)
	}
	protected.POST("/auth/token/logout", h.Logout)
}
