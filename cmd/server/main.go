package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"careerconnect/internal/config"
	"careerconnect/internal/handler"
	"careerconnect/internal/middleware"
	"careerconnect/internal/notify"
	"careerconnect/internal/repository"
	"careerconnect/internal/service"
	"careerconnect/internal/utils"
	"careerconnect/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found or error loading, relying on environment variables")
	}

	// --- Logger ---
	log := logrus.New()
	if os.Getenv("APP_ENV") == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET not set in environment")
	}
	sessionExpHours, err := strconv.ParseInt(os.Getenv("SESSION_EXPIRATION_HOURS"), 10, 64)
	if err != nil {
		sessionExpHours = 24
	}

	mailCfg, err := config.LoadMailConfig()
	if err != nil {
		log.Fatalf("Failed to load mail config: %v", err)
	}

	redisOpt, err := config.LoadRedisOpt()
	if err != nil {
		log.Fatalf("Failed to load Redis config: %v", err)
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}
	if err := os.MkdirAll(uploadsDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create uploads directory %s: %v", uploadsDir, err)
	}
	log.Infof("Uploads will be stored in: %s", uploadsDir)

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Task queue client ---
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	// --- Initialize Utilities ---
	sessionUtil := utils.NewSessionUtil(sessionSecret, sessionExpHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	jobRepo := repository.NewJobRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, sessionUtil)
	jobService := service.NewJobService(jobRepo, asynqClient, log)
	profileService := service.NewProfileService(userRepo, uploadsDir)

	// --- Notification worker ---
	mailer := notify.NewSMTPMailer(mailCfg)
	notifier := notify.NewNotifier(userRepo, mailer, log)
	workerServer := worker.NewServer(redisOpt, notifier, log)
	if err := workerServer.Start(); err != nil {
		log.Fatalf("Failed to start notification worker: %v", err)
	}

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, sessionUtil, log)
	jobHandler := handler.NewJobHandler(jobService, profileService, log)
	profileHandler := handler.NewProfileHandler(profileService, log)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.LoadHTMLGlob("templates/*.html")

	sessionMW := middleware.SessionMiddleware(sessionUtil)
	employerMW := middleware.EmployerMiddleware()

	authHandler.RegisterAuthRoutes(router)
	jobHandler.RegisterJobRoutes(router, sessionMW, employerMW)
	profileHandler.RegisterProfileRoutes(router, sessionMW)

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Infof("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	workerServer.Shutdown()

	log.Info("Server exiting")
}
