package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ModelMemo memoiza salidas de modelos por (post_id, model_version) para no
// recomputar embeddings/emociones en corridas repetidas del mismo usuario.
// Es una optimización: las fallas de cache nunca afectan el pipeline.
type ModelMemo interface {
	GetEmbedding(ctx context.Context, postID, version string) ([]float32, bool)
	SetEmbedding(ctx context.Context, postID, version string, vec []float32)
	GetEmotions(ctx context.Context, postID, version string) (map[string]float64, bool)
	SetEmotions(ctx context.Context, postID, version string, scores map[string]float64)
}

type redisModelMemo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisModelMemo construye el memoizador sobre Redis. Con client nil
// devuelve nil y el pipeline sigue sin memoización.
func NewRedisModelMemo(client *redis.Client, ttl time.Duration) ModelMemo {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &redisModelMemo{client: client, ttl: ttl}
}

func memoKey(kind, version, postID string) string {
	return "memo:" + kind + ":" + version + ":" + postID
}

func (m *redisModelMemo) GetEmbedding(ctx context.Context, postID, version string) ([]float32, bool) {
	raw, err := m.client.Get(ctx, memoKey("emb", version, postID)).Bytes()
	if err != nil {
		return nil, false
	}
	var vec []float32
	if err := json.Unmarshal(raw, &vec); err != nil || len(vec) == 0 {
		return nil, false
	}
	return vec, true
}

func (m *redisModelMemo) SetEmbedding(ctx context.Context, postID, version string, vec []float32) {
	raw, err := json.Marshal(vec)
	if err != nil {
		return
	}
	m.client.Set(ctx, memoKey("emb", version, postID), raw, m.ttl)
}

func (m *redisModelMemo) GetEmotions(ctx context.Context, postID, version string) (map[string]float64, bool) {
	raw, err := m.client.Get(ctx, memoKey("emo", version, postID)).Bytes()
	if err != nil {
		return nil, false
	}
	var scores map[string]float64
	if err := json.Unmarshal(raw, &scores); err != nil || len(scores) == 0 {
		return nil, false
	}
	return scores, true
}

func (m *redisModelMemo) SetEmotions(ctx context.Context, postID, version string, scores map[string]float64) {
	raw, err := json.Marshal(scores)
	if err != nil {
		return
	}
	m.client.Set(ctx, memoKey("emo", version, postID), raw, m.ttl)
}
