package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"aura-mind/internal/domain"
)

// PostSource es la frontera con el colaborador de ingesta: entrega el
// historial ordenado de posts crudos de un usuario. Puede estar vacío.
type PostSource interface {
	ListByAuthor(ctx context.Context, author string) ([]domain.Post, error)
}

type PostRepository interface {
	PostSource
	UpsertEmbedding(ctx context.Context, emb domain.Embedding) error
	SearchSimilar(ctx context.Context, postID string, k int) ([]domain.SimilarPost, error)
}

// PgPostRepository lee la tabla de posts cacheados que mantiene la ingesta y
// administra los embeddings por post para búsqueda por similitud.
type PgPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

func (r *PgPostRepository) ListByAuthor(ctx context.Context, author string) ([]domain.Post, error) {
	const query = `
		SELECT post_id, author, created_at, raw_text
		FROM cached_posts
		WHERE lower(author) = lower($1)
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, author)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Author, &p.CreatedAt, &p.RawText); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PgPostRepository) UpsertEmbedding(ctx context.Context, emb domain.Embedding) error {
	const query = `
		INSERT INTO post_embeddings (post_id, embedding, model_version, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (post_id) DO UPDATE
		SET embedding = EXCLUDED.embedding,
		    model_version = EXCLUDED.model_version,
		    updated_at = now()
	`
	_, err := r.pool.Exec(ctx, query, emb.PostID, pgvector.NewVector(emb.Vector), emb.ModelVersion)
	return err
}

// SearchSimilar devuelve los k posts más cercanos por distancia coseno al
// embedding del post dado. Solo compara vectores de la misma versión de
// modelo: mezclar versiones es un bug de correctitud, no de calidad.
func (r *PgPostRepository) SearchSimilar(ctx context.Context, postID string, k int) ([]domain.SimilarPost, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT p.post_id, p.author, p.raw_text, p.created_at,
		       (e.embedding <=> q.embedding)::float8 AS distance
		FROM post_embeddings e
		JOIN cached_posts p ON p.post_id = e.post_id
		JOIN post_embeddings q ON q.post_id = $1
		WHERE e.post_id <> $1
		  AND e.model_version = q.model_version
		ORDER BY e.embedding <=> q.embedding
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, postID, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SimilarPost
	for rows.Next() {
		var sp domain.SimilarPost
		if err := rows.Scan(&sp.PostID, &sp.Author, &sp.RawText, &sp.CreatedAt, &sp.Distance); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
