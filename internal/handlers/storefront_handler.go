package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/atelier-moda/storefront/internal/cart"
	"github.com/atelier-moda/storefront/internal/catalog"
	"github.com/atelier-moda/storefront/internal/checkout"
	"github.com/atelier-moda/storefront/internal/coupon"
	"github.com/atelier-moda/storefront/internal/customer"
	"github.com/atelier-moda/storefront/internal/orders"
	"github.com/atelier-moda/storefront/internal/validation"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type cartLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type addFavoriteRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// RegisterStorefrontRoutes exposes the session-scoped storefront state:
// cart, coupon, checkout, order history, favorites and profile.
func RegisterStorefrontRoutes(r *gin.Engine, sessions *SessionManager, cat *catalog.Service, history *orders.History, log logrus.FieldLogger) {
	api := r.Group("/api", SessionMiddleware(sessions))

	// cart
	api.GET("/cart", func(c *gin.Context) {
		s := sessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"items":      s.Cart.Items(),
			"totalItems": s.Cart.TotalItems(),
			"totalPrice": s.Cart.TotalPrice(),
		}})
	})

	api.POST("/cart/items", func(c *gin.Context) {
		s := sessionFrom(c)
		var req addCartItemRequest
		if !validation.BindJSON(c, &req) {
			return
		}

		p, err := cat.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, catalog.ErrNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"success": false, "error": err.Error()})
			return
		}

		if err := s.Cart.AddItem(*p, req.Quantity, req.Size, req.Color); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"items":      s.Cart.Items(),
			"totalItems": s.Cart.TotalItems(),
		}})
	})

	api.PATCH("/cart/items", func(c *gin.Context) {
		s := sessionFrom(c)
		var req cartLineRequest
		if !validation.BindJSON(c, &req) {
			return
		}

		key := cart.Key{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
		if err := s.Cart.UpdateQuantity(key, req.Quantity); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, cart.ErrLineNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": s.Cart.Items()}})
	})

	api.DELETE("/cart/items", func(c *gin.Context) {
		s := sessionFrom(c)
		var req cartLineRequest
		if !validation.BindJSON(c, &req) {
			return
		}
		s.Cart.RemoveItem(cart.Key{ProductID: req.ProductID, Size: req.Size, Color: req.Color})
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": s.Cart.Items()}})
	})

	api.DELETE("/cart", func(c *gin.Context) {
		s := sessionFrom(c)
		s.Cart.Clear()
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// coupon
	api.GET("/coupon", func(c *gin.Context) {
		s := sessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": s.Coupon.Current()})
	})

	api.POST("/coupon", func(c *gin.Context) {
		s := sessionFrom(c)
		var req applyCouponRequest
		if !validation.BindJSON(c, &req) {
			return
		}

		hasOrders := history.HasOrders(s.UserID())
		if err := s.Coupon.Apply(req.Code, hasOrders); err != nil {
			if errors.Is(err, coupon.ErrInvalidCode) || errors.Is(err, coupon.ErrAlreadyOrdered) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		state := s.Coupon.Current()
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    state,
			"message": fmt.Sprintf("İlk sipariş indirimi uygulandı! %%%d indirim kazandınız.", state.Percent),
		})
	})

	api.DELETE("/coupon", func(c *gin.Context) {
		s := sessionFrom(c)
		s.Coupon.Remove()
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// checkout
	api.GET("/checkout/quote", func(c *gin.Context) {
		s := sessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": s.Checkout.Quote()})
	})

	api.POST("/checkout", func(c *gin.Context) {
		s := sessionFrom(c)
		var req validation.CheckoutRequest
		if !validation.BindJSON(c, &req) {
			return
		}

		order, err := s.Checkout.Submit(req, s.UserID())
		if err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) || errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			log.WithError(err).Error("checkout: submit failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    order,
			"message": "Siparişiniz başarıyla oluşturuldu!",
		})
	})

	// order history
	api.GET("/orders", func(c *gin.Context) {
		s := sessionFrom(c)
		list := history.ByUser(s.UserID())
		c.JSON(http.StatusOK, gin.H{"success": true, "data": list, "count": len(list)})
	})

	// favorites
	api.GET("/favorites", func(c *gin.Context) {
		s := sessionFrom(c)
		list := s.Favorites.List()
		c.JSON(http.StatusOK, gin.H{"success": true, "data": list, "count": len(list)})
	})

	api.POST("/favorites", func(c *gin.Context) {
		s := sessionFrom(c)
		var req addFavoriteRequest
		if !validation.BindJSON(c, &req) {
			return
		}

		p, err := cat.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, catalog.ErrNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"success": false, "error": err.Error()})
			return
		}
		s.Favorites.Add(*p)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	api.DELETE("/favorites/:productId", func(c *gin.Context) {
		s := sessionFrom(c)
		s.Favorites.Remove(c.Param("productId"))
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// profile
	api.GET("/profile", func(c *gin.Context) {
		s := sessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": s.Profile.Current()})
	})

	api.POST("/profile/login", func(c *gin.Context) {
		s := sessionFrom(c)
		var u customer.User
		if !validation.BindJSON(c, &u) {
			return
		}
		s.Profile.Login(u)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": s.Profile.Current()})
	})

	api.POST("/profile/logout", func(c *gin.Context) {
		s := sessionFrom(c)
		s.Profile.Logout()
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	api.POST("/profile/addresses", func(c *gin.Context) {
		s := sessionFrom(c)
		var a customer.Address
		if !validation.BindJSON(c, &a) {
			return
		}
		added := s.Profile.AddAddress(a)
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": added})
	})

	api.PUT("/profile/addresses/:id", func(c *gin.Context) {
		s := sessionFrom(c)
		var a customer.Address
		if !validation.BindJSON(c, &a) {
			return
		}
		a.ID = c.Param("id")
		if err := s.Profile.UpdateAddress(a); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": a})
	})

	api.DELETE("/profile/addresses/:id", func(c *gin.Context) {
		s := sessionFrom(c)
		if err := s.Profile.RemoveAddress(c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	api.POST("/profile/addresses/:id/default", func(c *gin.Context) {
		s := sessionFrom(c)
		if err := s.Profile.SetDefaultAddress(c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
