package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"aura-mind/internal/config"
	"aura-mind/internal/domain"
	"aura-mind/internal/model"
	"aura-mind/internal/nlp"
	"aura-mind/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// fixturePost es el formato de entrada del archivo JSON de posts.
type fixturePost struct {
	ID        string             `json:"id"`
	Author    string             `json:"author"`
	CreatedAt time.Time          `json:"created_at"`
	Text      string             `json:"text"`
	Emotions  map[string]float64 `json:"emotions,omitempty"`
}

func main() {
	fixturePath := flag.String("posts", "", "ruta a un JSON con posts; vacío usa el set de ejemplo")
	flag.Parse()

	ctx := context.Background()
	logger := zap.NewNop()

	posts, scores, err := loadFixture(*fixturePath)
	if err != nil {
		log.Fatal(err)
	}

	encoder := &model.MockEncoder{Dim: 8}
	classifier := &model.MockClassifier{Scores: scores}

	svc := service.NewProfileService(
		logger,
		config.DefaultPipeline(),
		nil, // sin fuente de posts: corre BuildProfile directo
		nil, // sin persistencia
		encoder,
		classifier,
		nil,
		nil,
		nil,
	)

	profile, err := svc.BuildProfile(ctx, posts[0].Author, posts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s[user]%s %s (%d posts, %d usable)\n",
		colorCyan, colorReset, profile.UserID, len(profile.Posts), profile.UsablePosts)
	fmt.Printf("%s[insight]%s %s\n", colorCyan, colorReset, profile.QuickInsight)
	if profile.DominantAura != nil {
		fmt.Printf("%s[aura]%s %s\n", colorCyan, colorReset, profile.DominantAura.Aura)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
	fmt.Printf("%sok%s\n", colorGreen, colorReset)
}

// loadFixture lee posts del archivo dado, o devuelve el set de ejemplo.
// Devuelve también los scores de emociones indexados por texto normalizado,
// que es la clave que consulta el clasificador mock.
func loadFixture(path string) ([]domain.Post, map[string]map[string]float64, error) {
	var fixtures []fixturePost
	if path == "" {
		fixtures = samplePosts()
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read fixture: %w", err)
		}
		if err := json.Unmarshal(raw, &fixtures); err != nil {
			return nil, nil, fmt.Errorf("parse fixture: %w", err)
		}
	}
	if len(fixtures) == 0 {
		return nil, nil, fmt.Errorf("fixture has no posts")
	}

	posts := make([]domain.Post, 0, len(fixtures))
	scores := make(map[string]map[string]float64)
	for i, f := range fixtures {
		id := f.ID
		if id == "" {
			id = fmt.Sprintf("post-%d", i+1)
		}
		author := f.Author
		if author == "" {
			author = "sample-user"
		}
		createdAt := f.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC().AddDate(0, 0, i-len(fixtures))
		}
		posts = append(posts, domain.Post{
			ID:        id,
			Author:    author,
			CreatedAt: createdAt,
			RawText:   f.Text,
		})
		if f.Emotions != nil {
			scores[nlp.Normalize(f.Text)] = f.Emotions
		}
	}
	return posts, scores, nil
}

func samplePosts() []fixturePost {
	return []fixturePost{
		{Text: "Had a great walk this morning, feeling genuinely happy for once!", Emotions: map[string]float64{domain.EmotionJoy: 0.8, domain.EmotionNeutral: 0.2}},
		{Text: "I love spending weekends with my friends, they make everything better.", Emotions: map[string]float64{domain.EmotionLove: 0.7, domain.EmotionJoy: 0.3}},
		{Text: "Another deadline missed. I feel hopeless and tired of everything.", Emotions: map[string]float64{domain.EmotionSadness: 0.75, domain.EmotionFear: 0.15, domain.EmotionNeutral: 0.1}},
		{Text: "Can't sleep again. The worry never really stops at night.", Emotions: map[string]float64{domain.EmotionFear: 0.6, domain.EmotionSadness: 0.3, domain.EmotionNeutral: 0.1}},
		{Text: "Just meal prepped for the week and organized my schedule.", Emotions: map[string]float64{domain.EmotionNeutral: 0.9, domain.EmotionJoy: 0.1}},
		{Text: "Honestly surprised by how well the presentation went today!", Emotions: map[string]float64{domain.EmotionSurprise: 0.6, domain.EmotionJoy: 0.4}},
	}
}
