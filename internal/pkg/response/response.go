package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Конверт ответа: {"success":true,"data":...} либо
// {"success":false,"error":{"code","message","details"}}.

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Paginated оборачивает страницу списка в {"count", "results"}.
func Paginated(c *gin.Context, total int64, results any) {
	Success(c, http.StatusOK, gin.H{
		"count":   total,
		"results": results,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody{Code: code, Message: message},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody{Code: code, Message: message, Details: details},
	})
}
