package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"aura-mind/internal/alert"
	"aura-mind/internal/config"
	"aura-mind/internal/db"
	apihttp "aura-mind/internal/http"
	"aura-mind/internal/model"
	"aura-mind/internal/repository"
	"aura-mind/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	postRepo := repository.NewPgPostRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	encoder := model.NewHTTPEncoder(cfg.ModelBaseURL, cfg.ModelAPIKey, cfg.EmbeddingModel, logger)
	classifier := model.NewHTTPClassifier(cfg.ModelBaseURL, cfg.ModelAPIKey, cfg.EmotionModel, logger)

	var memo service.ModelMemo
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			memo = service.NewRedisModelMemo(redisClient, time.Duration(cfg.MemoTTLHours)*time.Hour)
		}
		cancel()
	}

	alertSender := alert.NewDisabledSender("alert sender not configured")
	if cfg.SMTPHost != "" && cfg.AlertEmail != "" {
		sender, err := alert.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
			cfg.SMTPFrom, cfg.SMTPFromName, cfg.AlertEmail, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			alertSender = sender
		}
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	profileSvc := service.NewProfileService(
		logger,
		cfg.Pipeline(),
		postRepo,
		profileRepo,
		encoder,
		classifier,
		postRepo,
		memo,
		alertSender,
	)

	authHandler := apihttp.NewAuthHandler(logger, jwtSvc, cfg.TherapistKeyHash)
	profileHandler := apihttp.NewProfileHandler(logger, profileSvc)
	therapistHandler := apihttp.NewTherapistHandler(logger, profileRepo, postRepo)
	router := apihttp.NewRouter(logger, jwtSvc, authHandler, profileHandler, therapistHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
