package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"aura-mind/internal/alert"
	"aura-mind/internal/cluster"
	"aura-mind/internal/config"
	"aura-mind/internal/domain"
	"aura-mind/internal/model"
	"aura-mind/internal/nlp"
	"aura-mind/internal/personality"
	"aura-mind/internal/repository"
)

// EmbeddingStore persiste embeddings por post para la búsqueda por
// similitud. Es auxiliar al perfil: sus errores no abortan la corrida.
type EmbeddingStore interface {
	UpsertEmbedding(ctx context.Context, emb domain.Embedding) error
}

// ProfileService orquesta el pipeline completo: normalización, scoring por
// post en paralelo, clustering de auras, agregados y persistencia atómica.
// Cada corrida es independiente y sin estado compartido entre usuarios.
type ProfileService struct {
	logger     *zap.Logger
	cfg        config.Pipeline
	posts      repository.PostSource
	profiles   repository.ProfileRepository
	encoder    model.Encoder
	classifier model.Classifier
	embeddings EmbeddingStore // puede ser nil
	memo       ModelMemo      // puede ser nil
	alerts     alert.Sender   // puede ser nil
}

func NewProfileService(
	logger *zap.Logger,
	cfg config.Pipeline,
	posts repository.PostSource,
	profiles repository.ProfileRepository,
	encoder model.Encoder,
	classifier model.Classifier,
	embeddings EmbeddingStore,
	memo ModelMemo,
	alerts alert.Sender,
) *ProfileService {
	return &ProfileService{
		logger:     logger,
		cfg:        cfg,
		posts:      posts,
		profiles:   profiles,
		encoder:    encoder,
		classifier: classifier,
		embeddings: embeddings,
		memo:       memo,
		alerts:     alerts,
	}
}

// GetProfile devuelve el último perfil persistido del usuario.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// Recompute corre el pipeline entero y reemplaza el perfil anterior solo si
// la corrida completa tuvo éxito. Es idempotente y seguro de reintentar.
func (s *ProfileService) Recompute(ctx context.Context, userID string) (domain.UserProfile, error) {
	posts, err := s.posts.ListByAuthor(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("list posts: %w", err)
	}

	profile, err := s.BuildProfile(ctx, userID, posts)
	if err != nil {
		return domain.UserProfile{}, err
	}

	if err := s.profiles.Replace(ctx, profile); err != nil {
		return domain.UserProfile{}, fmt.Errorf("replace profile: %w", err)
	}

	s.persistEmbeddings(ctx, profile)
	s.maybeAlert(ctx, profile)
	return profile, nil
}

// BuildProfile ejecuta el pipeline en memoria, sin persistir. Con cero posts
// devuelve el perfil vacío explícito, nunca un error.
func (s *ProfileService) BuildProfile(ctx context.Context, userID string, posts []domain.Post) (domain.UserProfile, error) {
	profile := domain.UserProfile{
		ProfileID:  uuid.NewString(),
		UserID:     userID,
		ComputedAt: time.Now().UTC(),
		Models: domain.ModelVersions{
			Encoder:    s.encoder.Version(),
			Classifier: s.classifier.Version(),
		},
	}

	sorted := make([]domain.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	for i := range sorted {
		sorted[i].NormalizedText = nlp.Normalize(sorted[i].RawText)
		if sorted[i].NormalizedText == "" {
			sorted[i].Skipped = true
			sorted[i].SkipReason = domain.SkipReasonEmpty
		}
	}

	if len(sorted) == 0 {
		profile.Personality = personality.Analyze(nil)
		profile.Risks = domain.DefaultRiskAssessment()
		profile.Forecast = ForecastMood(nil, s.cfg.ForecastDays)
		profile.QuickInsight = BuildQuickInsight("", 0, nil)
		profile.SessionTips = BuildSessionTips(profile.Risks)
		profile.LowConfidence = true
		return profile, nil
	}

	signals := s.scorePosts(ctx, sorted)

	var (
		usableIDs    []string
		usableTexts  []string
		embeddings   [][]float32
		emotions     []map[string]float64
		sentiments   []float64
		topEmotions  []string
		sentimentsBy = make(map[string]float64)
		emotionsBy   = make(map[string]map[string]float64)
	)
	for i := range sorted {
		post := sorted[i]
		if post.Skipped {
			continue
		}
		sig := signals[i]
		dist := domain.EmotionDistribution{
			PostID:       post.ID,
			Scores:       sig.emotions,
			ModelVersion: profile.Models.Classifier,
		}
		profile.Sentiments = append(profile.Sentiments, domain.SentimentScore{
			PostID:   post.ID,
			Compound: sig.sentiment.Compound,
			Positive: sig.sentiment.Positive,
			Negative: sig.sentiment.Negative,
			Neutral:  sig.sentiment.Neutral,
		})
		profile.Emotions = append(profile.Emotions, dist)
		profile.Embeddings = append(profile.Embeddings, domain.Embedding{
			PostID:       post.ID,
			Vector:       sig.embedding,
			ModelVersion: profile.Models.Encoder,
		})

		usableIDs = append(usableIDs, post.ID)
		usableTexts = append(usableTexts, post.NormalizedText)
		embeddings = append(embeddings, sig.embedding)
		emotions = append(emotions, sig.emotions)
		sentiments = append(sentiments, sig.sentiment.Compound)
		topEmotions = append(topEmotions, dist.TopEmotion())
		sentimentsBy[post.ID] = sig.sentiment.Compound
		emotionsBy[post.ID] = sig.emotions
	}

	profile.Posts = sorted
	profile.UsablePosts = len(usableIDs)
	profile.LowConfidence = len(usableIDs) < s.cfg.MinUsablePosts

	switch {
	case len(usableIDs) >= 2:
		features := cluster.BuildFeatures(embeddings, sentiments, emotions,
			s.cfg.SentimentFeatureWeight, s.cfg.EmotionFeatureWeight)
		res := cluster.SelectK(features, s.cfg.KMin, s.cfg.KMax, s.cfg.Seed, s.cfg.MaxIterations)
		profile.Auras = cluster.BuildAuras(usableIDs, topEmotions, sentiments, res)
		profile.Approximate = !res.Converged
	case len(usableIDs) == 1:
		profile.Auras = cluster.DegenerateAura(usableIDs, topEmotions, sentiments)
	}

	if largest := largestAura(profile.Auras); largest != nil {
		card := domain.AuraCard{Aura: largest.Aura, Description: largest.Description}
		profile.DominantAura = &card
	}

	profile.Personality = personality.Analyze(usableTexts)
	profile.MoodTrend = DailyMoodTrend(sorted, sentimentsBy, s.cfg.TrendBucket)
	profile.EmotionTrend = DailyEmotionTrend(sorted, emotionsBy)

	var meanSentiment float64
	for _, c := range sentiments {
		meanSentiment += c
	}
	if len(sentiments) > 0 {
		meanSentiment /= float64(len(sentiments))
	}

	profile.Risks = AssessRisks(RiskInputs{
		Corpus:          strings.Join(usableTexts, " "),
		MeanSentiment:   meanSentiment,
		LastDayEmotions: LastDayEmotions(profile.EmotionTrend),
	}, s.cfg.RiskModerateThreshold, s.cfg.RiskHighThreshold)

	profile.Forecast = ForecastMood(profile.MoodTrend, s.cfg.ForecastDays)

	dominant := ""
	if len(profile.Auras) > 0 {
		dominant = profile.DominantEmotion()
	}
	profile.QuickInsight = BuildQuickInsight(dominant, meanSentiment, profile.DominantAura)
	profile.SessionTips = BuildSessionTips(profile.Risks)

	return profile, nil
}

type postSignals struct {
	sentiment nlp.Sentiment
	embedding []float32
	emotions  map[string]float64
}

// scorePosts computa sentimiento, embedding y emociones por post con workers
// acotados. Sentimiento/embedding/emoción son independientes entre sí; el
// join ocurre acá porque el clustering necesita la matriz completa.
func (s *ProfileService) scorePosts(ctx context.Context, posts []domain.Post) []postSignals {
	signals := make([]postSignals, len(posts))

	workers := s.cfg.WorkerPoolSize
	if workers <= 0 {
		workers = 1
	}
	p := pool.New().WithMaxGoroutines(workers)
	for i := range posts {
		if posts[i].Skipped {
			continue
		}
		i := i
		p.Go(func() {
			post := &posts[i]
			signals[i].sentiment = nlp.ScoreText(post.NormalizedText)

			emb, err := s.encodePost(ctx, post.ID, post.NormalizedText)
			if err != nil {
				post.Skipped = true
				post.SkipReason = skipReasonFor(err, domain.SkipReasonEncoder)
				s.logger.Warn("post skipped", zap.String("post_id", post.ID),
					zap.String("reason", post.SkipReason), zap.Error(err))
				return
			}
			emo, err := s.classifyPost(ctx, post.ID, post.NormalizedText)
			if err != nil {
				post.Skipped = true
				post.SkipReason = skipReasonFor(err, domain.SkipReasonClassifier)
				s.logger.Warn("post skipped", zap.String("post_id", post.ID),
					zap.String("reason", post.SkipReason), zap.Error(err))
				return
			}
			signals[i].embedding = emb
			signals[i].emotions = emo
		})
	}
	p.Wait()
	return signals
}

func (s *ProfileService) encodePost(ctx context.Context, postID, text string) ([]float32, error) {
	if s.memo != nil {
		if vec, ok := s.memo.GetEmbedding(ctx, postID, s.encoder.Version()); ok {
			return vec, nil
		}
	}
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.ModelTimeout)
	defer cancel()
	vecs, err := s.encoder.Encode(callCtx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("encoder returned %d vectors for one input: %w", len(vecs), model.ErrUnavailable)
	}
	if s.memo != nil {
		s.memo.SetEmbedding(ctx, postID, s.encoder.Version(), vecs[0])
	}
	return vecs[0], nil
}

func (s *ProfileService) classifyPost(ctx context.Context, postID, text string) (map[string]float64, error) {
	if s.memo != nil {
		if scores, ok := s.memo.GetEmotions(ctx, postID, s.classifier.Version()); ok {
			return scores, nil
		}
	}
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.ModelTimeout)
	defer cancel()
	scores, err := s.classifier.Classify(callCtx, text)
	if err != nil {
		return nil, err
	}
	if s.memo != nil {
		s.memo.SetEmotions(ctx, postID, s.classifier.Version(), scores)
	}
	return scores, nil
}

func skipReasonFor(err error, fallback string) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.SkipReasonModelTimeout
	}
	return fallback
}

func (s *ProfileService) persistEmbeddings(ctx context.Context, profile domain.UserProfile) {
	if s.embeddings == nil {
		return
	}
	for _, emb := range profile.Embeddings {
		if err := s.embeddings.UpsertEmbedding(ctx, emb); err != nil {
			s.logger.Warn("embedding upsert failed", zap.String("post_id", emb.PostID), zap.Error(err))
		}
	}
}

func (s *ProfileService) maybeAlert(ctx context.Context, profile domain.UserProfile) {
	if s.alerts == nil || profile.Risks.Suicidal != domain.RiskHigh {
		return
	}
	if err := s.alerts.SendRiskAlert(ctx, profile.UserID, profile.Risks, profile.QuickInsight); err != nil {
		s.logger.Warn("risk alert failed", zap.String("user_id", profile.UserID), zap.Error(err))
	}
}

func largestAura(auras []domain.AuraCluster) *domain.AuraCluster {
	var largest *domain.AuraCluster
	for i := range auras {
		if largest == nil || len(auras[i].MemberPostIDs) > len(largest.MemberPostIDs) {
			largest = &auras[i]
		}
	}
	return largest
}
