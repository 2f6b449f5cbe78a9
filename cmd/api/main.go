package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/atelier-moda/storefront/internal/catalog"
	"github.com/atelier-moda/storefront/internal/chat"
	"github.com/atelier-moda/storefront/internal/checkout"
	"github.com/atelier-moda/storefront/internal/config"
	"github.com/atelier-moda/storefront/internal/handlers"
	"github.com/atelier-moda/storefront/internal/orders"
	"github.com/atelier-moda/storefront/internal/persist"
)

func setupRouter(cfg *config.Config, store persist.Store, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "Premium Moda E-Ticaret API",
		})
	})

	catalogSvc := catalog.NewService(catalog.NewInMemoryRepository(catalog.SeedProducts()))
	history := orders.NewHistory(store, "order-storage", log)
	sessions := handlers.NewSessionManager(store, history,
		checkout.Pricing{
			FreeShippingThreshold: cfg.Threshold(),
			FlatShippingFee:       cfg.ShippingFee(),
		},
		handlers.CouponConfig{Code: cfg.FirstOrderCode, Percent: cfg.FirstOrderPercent},
		log,
	)

	handlers.RegisterCatalogRoutes(r, catalogSvc, log)
	handlers.RegisterChatRoutes(r, chat.NewService())
	handlers.RegisterStorefrontRoutes(r, sessions, catalogSvc, history, log)

	return r
}

func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	var store persist.Store
	if cfg.DataDir != "" {
		fs, err := persist.NewFile(cfg.DataDir)
		if err != nil {
			log.WithError(err).Fatal("failed to open data dir")
		}
		store = fs
		log.WithField("dir", cfg.DataDir).Info("persisting session state to disk")
	} else {
		store = persist.NewMemory()
	}

	r := setupRouter(cfg, store, log)

	readTimeout, _ := time.ParseDuration(cfg.ReadTimeout)
	writeTimeout, _ := time.ParseDuration(cfg.WriteTimeout)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	log.WithField("addr", srv.Addr).Info("storefront API listening")
	if err := srv.ListenAndServe(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
