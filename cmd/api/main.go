package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"debt-planner/internal/api"
	"debt-planner/internal/api/middleware"
	"debt-planner/internal/config"
	"debt-planner/internal/data"
)

func main() {
	cfg, err := config.LoadServer("")
	if err != nil {
		log.Fatalf("Failed to load server config: %v", err)
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := api.Options{CORSOrigins: cfg.CORSOrigins}

	switch cfg.Cache.Backend {
	case config.CacheMemory:
		cache := data.NewResponseCache(cfg.Cache.TTL)
		defer cache.Close()
		opts.Cache = cache
		log.Printf("Comparison cache: memory (ttl %s)", cfg.Cache.TTL)
	case config.CacheRedis:
		cache := data.NewRedisCache(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		}, cfg.Cache.TTL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := cache.Ping(ctx)
		cancel()
		if err != nil {
			log.Fatalf("Failed to reach redis at %s: %v", cfg.Cache.RedisAddr, err)
		}
		defer cache.Close()
		opts.Cache = cache
		log.Printf("Comparison cache: redis %s (ttl %s)", cfg.Cache.RedisAddr, cfg.Cache.TTL)
	default:
		log.Printf("Comparison cache disabled")
	}

	if cfg.RateLimit.Capacity > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
		defer limiter.Stop()
		opts.Limiter = limiter
		log.Printf("Rate limit: %d requests per %s per client", cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	}

	// Check if static directory exists
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		opts.StaticDir = cfg.StaticDir
		log.Printf("Serving static files from %s", cfg.StaticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", cfg.StaticDir)
	}

	router := api.NewRouter(opts)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
