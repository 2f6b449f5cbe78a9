package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/atelier-moda/storefront/internal/catalog"
)

// RegisterCatalogRoutes exposes the read-only product API. Every response
// uses the {success, data, count?, error?} envelope.
func RegisterCatalogRoutes(r *gin.Engine, svc *catalog.Service, log logrus.FieldLogger) {
	products := r.Group("/api/products")

	products.GET("", func(c *gin.Context) {
		var f catalog.Filter
		f.Category = c.Query("category")
		if v, ok := c.GetQuery("featured"); ok {
			featured := v == "true"
			f.Featured = &featured
		}

		list, err := svc.List(c.Request.Context(), f)
		if err != nil {
			log.WithError(err).Error("catalog: list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": list, "count": len(list)})
	})

	products.GET("/featured", func(c *gin.Context) {
		list, err := svc.Featured(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("catalog: featured listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": list, "count": len(list)})
	})

	products.GET("/search", func(c *gin.Context) {
		q, ok := c.GetQuery("q")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   `Arama sorgusu parametresi "q" gereklidir`,
			})
			return
		}

		list, err := svc.Search(c.Request.Context(), q)
		if err != nil {
			log.WithError(err).Error("catalog: search failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": list, "count": len(list)})
	})

	products.GET("/:id", func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, catalog.ErrNotFound) {
				status = http.StatusNotFound
			} else {
				log.WithError(err).Error("catalog: lookup failed")
			}
			c.JSON(status, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
	})
}
