package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/modelmonitor/model-monitor/internal/auth"
	"github.com/modelmonitor/model-monitor/internal/config"
	dbpkg "github.com/modelmonitor/model-monitor/internal/db"
	"github.com/modelmonitor/model-monitor/internal/middleware"
	"github.com/modelmonitor/model-monitor/internal/routes"
	"github.com/modelmonitor/model-monitor/internal/storage"
	"github.com/modelmonitor/model-monitor/internal/ws"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	denylist := auth.NewDenylist(newRedis(cfg))

	uploader := storage.NewUploader(cfg)
	if uploader == nil {
		log.Println("S3_BUCKET not set, logo uploads disabled")
	}

	hub := ws.NewHub()
	go hub.Run()

	limiter := middleware.NewIPRateLimiter(middleware.DefaultRPS, middleware.DefaultBurst)
	pruneCtx, stopPrune := context.WithCancel(context.Background())
	defer stopPrune()
	go limiter.PruneLoop(pruneCtx, 10*time.Minute)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/static", cfg.StaticDir)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/web/app/login")
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Denylist: denylist,
		Uploader: uploader,
		Hub:      hub,
		Limiter:  limiter,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func newRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, logout token denylist disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	log.Println("Redis connected")
	return client
}
