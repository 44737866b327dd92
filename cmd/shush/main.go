package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shush-app/shush/internal/ai"
	"github.com/shush-app/shush/internal/api"
	"github.com/shush-app/shush/internal/storage"
	"github.com/shush-app/shush/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "shush.db"))
	port := getEnv("PORT", "8080")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"

	backend, err := storage.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	logStore := store.NewCycleLogStore(backend)

	content, err := ai.NewContentService(context.Background(), geminiKey)
	if err != nil {
		log.Fatalf("ai service init failed: %v", err)
	}
	if geminiKey == "" {
		log.Println("GEMINI_API_KEY not set, serving static fallback content")
	}

	handler := api.NewHandler(logStore, content, secretKey, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "shush",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("shush listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
