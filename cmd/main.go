package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hosteldesk/backend/internal/api/handler"
	"hosteldesk/backend/internal/complaint"
	"hosteldesk/backend/internal/hub"
	"hosteldesk/backend/internal/notify"
	"hosteldesk/backend/internal/session"
	"hosteldesk/backend/internal/storage"
)

var log = &logrus.Logger{
	Out:       os.Stderr,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupDependencies() (*gorm.DB, *redis.Client) {
	dsn := env("DATABASE_DSN",
		"host=localhost user=user password=password dbname=hosteldesk port=5432 sslmode=disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     env("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	return db, rdb
}

func main() {
	log.Println("Starting HostelDesk Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, rdb := setupDependencies()

	backend, err := storage.NewGormBackend(db)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := storage.NewService(backend, rdb, log)
	if err := store.Load(); err != nil {
		log.Fatalf("Failed to load entity collections: %v", err)
	}

	complaints := complaint.NewService(store)
	sessions := session.NewService(store, session.NewRedisTokenStore(rdb), []byte(secret))

	eventHub := hub.NewManagerService(store, log)
	go eventHub.Run()

	// Optional: forward complaint events to a warden Telegram chat.
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
		if err != nil {
			log.Fatalf("TELEGRAM_CHAT_ID must be a number: %v", err)
		}
		notifier, err := notify.NewTelegramNotifier(token, chatID, log)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		eventHub.RegisterCh <- notifier
		notifier.Run()
	}

	r := gin.Default()
	h := handler.NewHandler(store, complaints, sessions, eventHub, log)
	h.Routes(r)

	server := &http.Server{
		Addr:           env("LISTEN_ADDR", ":8080"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
