package main

import (
	"context"
	"log"
	"time"

	"github.com/darshakkanani/Honeypot-Setup-sub001/config"
	"github.com/darshakkanani/Honeypot-Setup-sub001/db"
	authhandler "github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/handler"
	authrepo "github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/repository/postgres"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/service"
	dashhandler "github.com/darshakkanani/Honeypot-Setup-sub001/internal/dashboard/handler"
	dashrepo "github.com/darshakkanani/Honeypot-Setup-sub001/internal/dashboard/repository/postgres"
	dashservice "github.com/darshakkanani/Honeypot-Setup-sub001/internal/dashboard/service"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/geoip"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	startedAt := time.Now()

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	var resolver dashservice.CountryResolver
	if cfg.GeoIPDBPath != "" {
		geoResolver, err := geoip.Open(cfg.GeoIPDBPath)
		if err != nil {
			log.Fatalf("failed to open GeoIP database %s: %v", cfg.GeoIPDBPath, err)
		}
		defer geoResolver.Close()
		resolver = geoResolver
	}

	userRepo := authrepo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryHours)
	userService := service.NewUserService(userRepo, tokenService, cfg)
	authHandler := authhandler.NewAuthHandler(userService)

	attackRepo := dashrepo.NewPostgresAttackRepository(dbPool)
	aggregator := dashservice.NewDashboardService(attackRepo, resolver, startedAt)
	dashboard := dashservice.NewFallbackService(aggregator)
	dashboardHandler := dashhandler.NewDashboardHandler(dashboard)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authhandler.RegisterRoutes(app, authHandler)
	dashhandler.RegisterRoutes(app, dashboardHandler)

	log.Printf("honeynet console listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
