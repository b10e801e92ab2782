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

	"newgen_backend/internal/api"
	"newgen_backend/internal/app/service"
	"newgen_backend/internal/app/worker"
	"newgen_backend/internal/common/security"
	"newgen_backend/internal/domain/repository"
	"newgen_backend/internal/platform/ai"
	"newgen_backend/internal/platform/config"
	"newgen_backend/internal/platform/database"
	"newgen_backend/internal/platform/mail"
	"newgen_backend/internal/platform/queue"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 3. Initialize Redis
	queue.ConnectRedis()
	defer queue.CloseRedis()
	fmt.Println("Redis connected.")

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	testRepo := repository.NewPgTestResultRepository(database.DB)
	careerRepo := repository.NewPgSavedCareerRepository(database.DB)

	// 5. Initialize Services
	hasher := security.NewBcryptHasher()
	notificationService := service.NewNotificationService(queue.RDB, config.AppConfig.MailQueueName)
	authService := service.NewAuthService(userRepo, hasher, notificationService)
	profileService := service.NewProfileService(userRepo, testRepo, careerRepo)
	careerService := service.NewCareerService(careerRepo)
	chatService := service.NewChatService(
		ai.NewClient(),
		config.AppConfig.AIModel,
		config.AppConfig.AIMaxTokens,
		config.AppConfig.AIRequestTimeout,
	)

	// 6. Initialize Mail Worker (as a goroutine)
	mailWorker := worker.NewMailWorker(queue.RDB, config.AppConfig.MailQueueName, mail.NewSMTPMailer())
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	go mailWorker.Start(workerCtx)
	fmt.Println("Mail worker started.")

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, profileService, careerService, chatService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")
	workerCancel() // Signal worker to stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server and worker stopped gracefully.")
}
