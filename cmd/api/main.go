package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four-ai/backend/internal/config"
	"github.com/iamasit07/connect-four-ai/backend/internal/repository/redis"
	"github.com/iamasit07/connect-four-ai/backend/internal/service/bot"
	"github.com/iamasit07/connect-four-ai/backend/internal/service/cleanup"
	"github.com/iamasit07/connect-four-ai/backend/internal/service/game"
	transportHttp "github.com/iamasit07/connect-four-ai/backend/internal/transport/http"
	"github.com/iamasit07/connect-four-ai/backend/internal/transport/http/middleware"
	"github.com/iamasit07/connect-four-ai/backend/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// 1. Move cache (optional)
	if err := redis.InitRedis(cfg); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var cache bot.MoveCache
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewRedisCache(redis.RedisClient)
	}

	// 2. Engine and the live game
	engine := bot.NewEngine(cache, cfg.MoveCacheTTL)
	connManager := websocket.NewConnectionManager()
	sessionManager := game.NewSessionManager(engine, connManager, cfg.BotMoveDelay)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Background workers
	cleanupWorker := cleanup.NewWorker(sessionManager, 10*time.Minute, cfg.FinishedGameTTL)
	go cleanupWorker.Start(ctx)

	// 4. Handlers
	gameHandler := transportHttp.NewGameHandler(sessionManager, engine.CacheEnabled)
	wsHandler := websocket.NewHandler(connManager, sessionManager, cfg.AllowedOrigins)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/healthz", gameHandler.Health)
	router.GET("/api/game", gameHandler.GetGame)
	router.POST("/api/game", gameHandler.NewGame)
	router.POST("/api/game/move", gameHandler.MakeMove)
	router.GET("/ws", wsHandler.HandleWebSocket)

	// Serve the board page when a static build is present
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		index := filepath.Join(cfg.StaticDir, "index.html")
		router.GET("/", func(c *gin.Context) {
			c.File(index)
		})

		router.NoRoute(func(c *gin.Context) {
			path := filepath.Join(cfg.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				c.File(path)
				return
			}

			if strings.HasPrefix(c.Request.URL.Path, "/api/") || strings.HasSuffix(c.Request.URL.Path, ".js") || strings.HasSuffix(c.Request.URL.Path, ".css") {
				c.Status(http.StatusNotFound)
				return
			}

			c.File(index)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
