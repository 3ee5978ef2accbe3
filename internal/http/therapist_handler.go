package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aura-mind/internal/domain"
)

// ProfileSearcher lista perfiles ya computados para la vista del terapeuta.
type ProfileSearcher interface {
	Search(ctx context.Context, name, dominantEmotion string, limit int) ([]domain.ProfileSummary, error)
}

// SimilarPostFinder busca posts cercanos por embedding.
type SimilarPostFinder interface {
	SearchSimilar(ctx context.Context, postID string, k int) ([]domain.SimilarPost, error)
}

// TherapistHandler expone las herramientas de consulta del terapeuta.
type TherapistHandler struct {
	logger   *zap.Logger
	profiles ProfileSearcher
	posts    SimilarPostFinder
}

func NewTherapistHandler(logger *zap.Logger, profiles ProfileSearcher, posts SimilarPostFinder) *TherapistHandler {
	return &TherapistHandler{logger: logger, profiles: profiles, posts: posts}
}

// Search maneja GET /therapist/search.
func (h *TherapistHandler) Search(c *gin.Context) {
	name := c.Query("name")
	emotion := c.Query("emotion")
	if emotion != "" && !domain.IsEmotionLabel(emotion) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown emotion label"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	summaries, err := h.profiles.Search(c.Request.Context(), name, emotion, limit)
	if err != nil {
		h.logger.Error("profile search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search profiles"})
		return
	}
	if summaries == nil {
		summaries = []domain.ProfileSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"results": summaries})
}

// SimilarPosts maneja GET /therapist/similar_posts.
func (h *TherapistHandler) SimilarPosts(c *gin.Context) {
	postID := c.Query("post_id")
	if postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post_id is required"})
		return
	}
	k, _ := strconv.Atoi(c.DefaultQuery("k", "5"))

	posts, err := h.posts.SearchSimilar(c.Request.Context(), postID, k)
	if err != nil {
		h.logger.Error("similar post search failed", zap.String("post_id", postID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search similar posts"})
		return
	}
	if posts == nil {
		posts = []domain.SimilarPost{}
	}
	c.JSON(http.StatusOK, gin.H{"results": posts})
}
