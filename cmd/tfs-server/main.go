// Command tfs-server exposes the query builder as a stateless HTTP
// service.
package main

import (
	"log"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/go-faster/tfs/internal/handler"
	"github.com/go-faster/tfs/internal/ratelimit"
	"github.com/go-faster/tfs/internal/version"
)

type Config struct {
	Port              string
	RequestsPerSecond float64
	BurstSize         int
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	limiter := ratelimit.NewClientLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.RequestsPerSecond,
		BurstSize:         cfg.BurstSize,
	})

	api := e.Group("/api/v1", limiter.Middleware())
	api.POST("/query/encode", handler.Encode)
	e.GET("/health", handler.Health)

	log.Printf("Starting tfs server %s on port %s", version.Get().Raw, cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 10),
		BurstSize:         getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
