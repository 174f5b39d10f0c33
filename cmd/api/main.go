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

	"sellegate-backend/internal/client"
	"sellegate-backend/internal/config"
	"sellegate-backend/internal/repository"
	"sellegate-backend/internal/server"
	"sellegate-backend/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db, err := client.InitDBClient(cfg.Database)
	if err != nil {
		log.Fatal("init database: ", err)
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	profileRepo := repository.NewEvaluatorProfileRepository(db)
	itemRepo := repository.NewItemRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	authService := service.NewAuthService(db, cfg.Auth, userRepo, tokenRepo, profileRepo)
	itemService := service.NewItemService(db, itemRepo, paymentRepo)
	evaluationService := service.NewEvaluationService(db, evaluationRepo, itemRepo)
	evaluatorService := service.NewEvaluatorService(userRepo, profileRepo)
	cartService := service.NewCartService(cartRepo, itemRepo)
	ratingService := service.NewRatingService(db, ratingRepo, userRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(authService, itemService, evaluationService, evaluatorService, cartService, ratingService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
