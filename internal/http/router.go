package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aura-mind/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	authH *AuthHandler,
	profileH *ProfileHandler,
	therapistH *TherapistHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	auth := r.Group("/auth")
	auth.POST("/login", authH.Login)

	profiles := r.Group("/profiles")
	profiles.Use(JWTAuthMiddleware(jwtSvc))
	profiles.GET("/:user_id", profileH.GetProfile)
	profiles.POST("/:user_id/recompute", profileH.Recompute)
	profiles.GET("/:user_id/mood_trend", profileH.MoodTrend)
	profiles.GET("/:user_id/aura", profileH.Aura)
	profiles.GET("/:user_id/emotions", profileH.Emotions)

	therapist := r.Group("/therapist")
	therapist.Use(JWTAuthMiddleware(jwtSvc))
	therapist.GET("/search", therapistH.Search)
	therapist.GET("/similar_posts", therapistH.SimilarPosts)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
