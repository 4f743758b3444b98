package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YashPro8158/credifybackend/config"
	_ "github.com/YashPro8158/credifybackend/docs" // Important for Swagger
	v1 "github.com/YashPro8158/credifybackend/internal/delivery/http/v1"
	"github.com/YashPro8158/credifybackend/internal/usecase"
	"github.com/YashPro8158/credifybackend/pkg/logger"
	"github.com/YashPro8158/credifybackend/pkg/mailer"
	"github.com/YashPro8158/credifybackend/pkg/redis"
	"github.com/YashPro8158/credifybackend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Credify Backend API
// @version         1.0
// @description     Form submission backend: validates contact, career, and loan application forms and relays them as email notifications.
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting credify backend", "port", cfg.Port, "transport", cfg.MailTransport)

	// 3. Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 4. Setup Redis (rate limit backend; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Mail Transport
	var sender mailer.Sender
	switch cfg.MailTransport {
	case config.TransportAPI:
		api := mailer.NewAPISender(cfg)
		if !api.IsConfigured() {
			logger.Log.Warn("BREVO_API_KEY not set - notifications will fail")
		}
		sender = api
	default:
		smtp := mailer.NewSMTPSender(cfg)
		if !smtp.IsConfigured() {
			logger.Log.Warn("SMTP credentials not fully configured - notifications will fail")
		}
		sender = smtp
	}

	// 6. Setup Dispatcher (background worker for fire-and-forget sends)
	dispatcher := mailer.NewDispatcher(sender, cfg.MailQueueSize, logger.Log)

	// 7. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender)
	careerUC := usecase.NewCareerUsecase(sender)
	loanUC := usecase.NewLoanUsecase(dispatcher)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		CareerUC:  careerUC,
		LoanUC:    loanUC,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	// Drain queued notifications before exit
	dispatcher.Close()

	logger.Log.Info("Server exiting")
}
