package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindJSON binds the request body into out. On failure it writes the 400
// response itself and returns false so the handler can short-circuit.
func BindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Geçersiz istek gövdesi",
		})
		return false
	}
	return true
}
