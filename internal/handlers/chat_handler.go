package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-moda/storefront/internal/chat"
)

// RegisterChatRoutes exposes the mocked recommendation endpoint.
func RegisterChatRoutes(r *gin.Engine, svc *chat.Service) {
	r.POST("/api/chat/recommend", func(c *gin.Context) {
		var req chat.Request
		if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Mesaj gereklidir"})
			return
		}

		resp := svc.Recommend(c.Request.Context(), req)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
	})
}
