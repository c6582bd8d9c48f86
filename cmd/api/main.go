package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Tramle26/ai-economic-consultant/db"
	"github.com/Tramle26/ai-economic-consultant/internal/app"
	"github.com/Tramle26/ai-economic-consultant/internal/config"
	"github.com/Tramle26/ai-economic-consultant/internal/handler"
	"github.com/Tramle26/ai-economic-consultant/internal/middleware"
	"github.com/Tramle26/ai-economic-consultant/internal/repository"
	"github.com/Tramle26/ai-economic-consultant/internal/service"
	"github.com/Tramle26/ai-economic-consultant/internal/trace"
)

const requestTimeout = 90 * time.Second

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if err := trace.Init(cfg.Tracing.Enabled); err != nil {
		log.Fatalf("error initializing tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		trace.Shutdown(ctx)
	}()

	var store handler.SessionStore
	if cfg.Session.RedisURL != "" {
		err = db.ConnectRedis(cfg.Session.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		store = repository.NewSessionRepository(db.Redis, db.SessionKeyPrefix, cfg.Session.TTL)
	} else {
		slog.Warn("REDIS_URL not set, sessions kept in memory")
		store = repository.NewMemorySessionStore(cfg.Session.TTL)
	}

	responder, err := app.NewResponder(cfg)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}

	data := app.NewMarketData(cfg)
	chat := service.NewChatService(data, responder)
	sessions := handler.NewSessions(store, cfg.Session.CookieName, cfg.Session.TTL)

	pageHandler := handler.NewPageHandler(service.NewDashboard(data), chat, sessions)
	consultHandler := handler.NewConsultHandler(chat, sessions)
	healthHandler := handler.NewHealthHandler(sessions)

	r := gin.Default()

	slog.Info("AllowOrigins URL:", "urls", cfg.Server.AllowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Error())
	r.Use(middleware.Timeout(requestTimeout))

	r.GET("/", pageHandler.GetIndex)
	r.GET("/search", pageHandler.GetSearch)
	r.POST("/consult", pageHandler.PostConsult)
	r.POST("/clear_chat", pageHandler.PostClearChat)
	r.POST("/api/consult", consultHandler.PostConsult)
	r.GET("/health", healthHandler.GetHealth)

	slog.Info("starting server", "port", cfg.Server.Port, "llm", cfg.LLM.Provider, "model", responder.Name(), "news", cfg.News.Provider)

	err = r.Run(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
