package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aura-mind/internal/domain"
	"aura-mind/internal/repository"
	"aura-mind/internal/service"
)

// ProfileProvider es lo que el handler necesita del pipeline de perfiles.
type ProfileProvider interface {
	GetProfile(ctx context.Context, userID string) (domain.UserProfile, error)
	Recompute(ctx context.Context, userID string) (domain.UserProfile, error)
}

// ProfileHandler expone el perfil derivado y sus vistas parciales.
type ProfileHandler struct {
	logger   *zap.Logger
	profiles ProfileProvider
}

func NewProfileHandler(logger *zap.Logger, profiles ProfileProvider) *ProfileHandler {
	return &ProfileHandler{logger: logger, profiles: profiles}
}

// GetProfile maneja GET /profiles/:user_id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.Param("user_id")
	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		h.logger.Error("get profile failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Recompute maneja POST /profiles/:user_id/recompute.
func (h *ProfileHandler) Recompute(c *gin.Context) {
	userID := c.Param("user_id")
	profile, err := h.profiles.Recompute(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("recompute failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not recompute profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// MoodTrend maneja GET /profiles/:user_id/mood_trend.
func (h *ProfileHandler) MoodTrend(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":    profile.UserID,
		"mood_trend": profile.MoodTrend,
		"forecast":   profile.Forecast,
	})
}

// Aura maneja GET /profiles/:user_id/aura.
func (h *ProfileHandler) Aura(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":       profile.UserID,
		"auras":         profile.Auras,
		"dominant_aura": profile.DominantAura,
		"approximate":   profile.Approximate,
	})
}

// Emotions maneja GET /profiles/:user_id/emotions.
func (h *ProfileHandler) Emotions(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":       profile.UserID,
		"emotion_trend": profile.EmotionTrend,
		"summary":       service.BuildTrendSummary(profile.EmotionTrend),
	})
}

func (h *ProfileHandler) loadProfile(c *gin.Context) (domain.UserProfile, bool) {
	userID := c.Param("user_id")
	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return domain.UserProfile{}, false
	}
	if err != nil {
		h.logger.Error("get profile failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return domain.UserProfile{}, false
	}
	return profile, true
}
