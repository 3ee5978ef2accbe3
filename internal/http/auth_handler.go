package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"aura-mind/internal/domain"
	"aura-mind/internal/service"
)

// AuthHandler autentica terapeutas contra la clave compartida configurada y
// emite tokens de acceso.
type AuthHandler struct {
	logger  *zap.Logger
	jwtSvc  *service.JWTService
	keyHash string
}

func NewAuthHandler(logger *zap.Logger, jwtSvc *service.JWTService, keyHash string) *AuthHandler {
	return &AuthHandler{logger: logger, jwtSvc: jwtSvc, keyHash: keyHash}
}

// Login maneja POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		TherapistID string `json:"therapist_id" binding:"required"`
		Key         string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if strings.TrimSpace(h.keyHash) == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "auth not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.keyHash), []byte(req.Key)); err != nil {
		h.logger.Warn("login rejected", zap.String("therapist_id", req.TherapistID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.jwtSvc.Issue(domain.Therapist{ID: req.TherapistID})
	if err != nil {
		h.logger.Error("issue token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, token)
}
