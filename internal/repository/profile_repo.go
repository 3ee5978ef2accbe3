package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aura-mind/internal/domain"
)

// ErrProfileNotFound indica que el usuario nunca fue perfilado.
var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	// Replace persiste el perfil completo de forma atómica: o reemplaza el
	// anterior entero o lo deja intacto. Nunca hay perfiles parciales.
	Replace(ctx context.Context, profile domain.UserProfile) error
	GetByUserID(ctx context.Context, userID string) (domain.UserProfile, error)
	Search(ctx context.Context, name, dominantEmotion string, limit int) ([]domain.ProfileSummary, error)
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Replace(ctx context.Context, profile domain.UserProfile) error {
	// Los vectores viven en post_embeddings; el documento del perfil va sin
	// ellos para mantener la fila liviana.
	doc := profile
	doc.Embeddings = nil
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO user_profiles (user_id, profile, post_count, dominant_emotion, computed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET profile = EXCLUDED.profile,
		    post_count = EXCLUDED.post_count,
		    dominant_emotion = EXCLUDED.dominant_emotion,
		    computed_at = EXCLUDED.computed_at
	`
	_, err = r.pool.Exec(ctx, query,
		profile.UserID,
		payload,
		len(profile.Posts),
		profile.DominantEmotion(),
		profile.ComputedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.UserProfile, error) {
	const query = `
		SELECT profile
		FROM user_profiles
		WHERE user_id = $1
	`
	var payload []byte
	err := r.pool.QueryRow(ctx, query, userID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UserProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return domain.UserProfile{}, err
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

func (r *PgProfileRepository) Search(ctx context.Context, name, dominantEmotion string, limit int) ([]domain.ProfileSummary, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	const query = `
		SELECT user_id, post_count, dominant_emotion, computed_at
		FROM user_profiles
		WHERE ($1 = '' OR user_id ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR dominant_emotion = $2)
		ORDER BY computed_at DESC
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, name, dominantEmotion, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ProfileSummary
	for rows.Next() {
		var s domain.ProfileSummary
		if err := rows.Scan(&s.UserID, &s.PostCount, &s.DominantEmotion, &s.ComputedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
