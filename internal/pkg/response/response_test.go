package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, write func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	write(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestSuccess(t *testing.T) {
	rec, body := record(t, func(c *gin.Context) {
		Success(c, http.StatusCreated, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["data"].(map[string]any)["id"])
}

func TestPaginated(t *testing.T) {
	rec, body := record(t, func(c *gin.Context) {
		Paginated(c, 42, []string{"a", "b"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(42), data["count"])
	assert.Len(t, data["results"], 2)
}

func TestError_OmitsEmptyDetails(t *testing.T) {
	rec, body := record(t, func(c *gin.Context) {
		Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errObj["code"])
	assert.Equal(t, "Recipe not found", errObj["message"])
	assert.NotContains(t, errObj, "details")
}

func TestErrorWithDetails(t *testing.T) {
	_, body := record(t, func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed",
			map[string]string{"cooking_time": "min"})
	})

	errObj := body["error"].(map[string]any)
	details := errObj["details"].(map[string]any)
	assert.Equal(t, "min", details["cooking_time"])
}
