package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shopapi/config"
	"shopapi/controller"
	"shopapi/routes"
	"shopapi/store"
	"shopapi/utils"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not configured")
	}

	ctx := context.Background()
	client, err := config.ConnectMongo(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logrus.WithError(err).Warn("MongoDB disconnect failed")
		}
	}()

	db := store.NewMongo(client.Database(cfg.DBName))
	if err := db.EnsureIndexes(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to create indexes")
	}

	redisClient := config.InitRedis(ctx, cfg)
	notifier := utils.ConsoleNotifier{}

	router := gin.Default()
	router.Use(corsMiddleware(cfg))

	routes.Register(router, routes.Deps{
		Store:     db,
		JWTSecret: cfg.JWTSecret,
		Redis:     redisClient,
		Auth:      controller.NewAuthController(db, cfg.JWTSecret, notifier),
		Products:  controller.NewProductController(db),
		Reviews:   controller.NewReviewController(db, db),
		Carts:     controller.NewCartController(db),
		Wishlist:  controller.NewWishlistController(db, db),
		Orders:    controller.NewOrderController(db, db, notifier),
	})

	logrus.WithField("port", cfg.Port).Info("Starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	if cfg.AllowAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowCredentials = true
	}
	return cors.New(corsCfg)
}
