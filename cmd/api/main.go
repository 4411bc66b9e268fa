package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/quoteshelf/api/internal/config"
	jwtinfra "github.com/quoteshelf/api/internal/infrastructure/jwt"
	"github.com/quoteshelf/api/internal/infrastructure/postgres"
	redisinfra "github.com/quoteshelf/api/internal/infrastructure/redis"
	"github.com/quoteshelf/api/internal/infrastructure/smtp"
	"github.com/quoteshelf/api/internal/infrastructure/social"
	transporthttp "github.com/quoteshelf/api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	db, err := postgres.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()
	if err := postgres.Bootstrap(ctx, db); err != nil {
		log.Fatalf("postgres bootstrap: %v", err)
	}

	redisClient, err := redisinfra.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	// JWT provider is optional; login routes answer 500 until a secret is set.
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	deps := &transporthttp.Deps{
		DB:          db,
		UserRepo:    postgres.NewUserRepo(db),
		QuoteRepo:   postgres.NewQuoteRepo(db),
		Codes:       redisinfra.NewVerificationStore(redisClient, cfg),
		Mailer:      smtp.NewMailer(cfg),
		Providers:   social.NewRegistry(social.NewKakao(), social.NewNaver()),
		JWTProvider: jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
