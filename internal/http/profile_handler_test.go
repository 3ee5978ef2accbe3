package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"aura-mind/internal/domain"
	"aura-mind/internal/repository"
	"aura-mind/internal/service"
)

type mockProfileProvider struct {
	profiles   map[string]domain.UserProfile
	recomputes int
	err        error
}

func (m *mockProfileProvider) GetProfile(_ context.Context, userID string) (domain.UserProfile, error) {
	if m.err != nil {
		return domain.UserProfile{}, m.err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return domain.UserProfile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileProvider) Recompute(_ context.Context, userID string) (domain.UserProfile, error) {
	if m.err != nil {
		return domain.UserProfile{}, m.err
	}
	m.recomputes++
	p := domain.UserProfile{UserID: userID, ComputedAt: time.Now().UTC()}
	if m.profiles == nil {
		m.profiles = make(map[string]domain.UserProfile)
	}
	m.profiles[userID] = p
	return p, nil
}

type mockProfileSearcher struct {
	results []domain.ProfileSummary
	err     error
}

func (m *mockProfileSearcher) Search(_ context.Context, _, _ string, _ int) ([]domain.ProfileSummary, error) {
	return m.results, m.err
}

type mockSimilarFinder struct {
	results []domain.SimilarPost
	err     error
}

func (m *mockSimilarFinder) SearchSimilar(_ context.Context, _ string, _ int) ([]domain.SimilarPost, error) {
	return m.results, m.err
}

func newTestRouter(t *testing.T, provider ProfileProvider, searcher ProfileSearcher, finder SimilarPostFinder, keyHash string) (*gin.Engine, *service.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	jwtSvc := service.NewJWTService("test-secret", 15*time.Minute)
	authH := NewAuthHandler(logger, jwtSvc, keyHash)
	profileH := NewProfileHandler(logger, provider)
	therapistH := NewTherapistHandler(logger, searcher, finder)
	return NewRouter(logger, jwtSvc, authH, profileH, therapistH), jwtSvc
}

func bearerToken(t *testing.T, jwtSvc *service.JWTService) string {
	t.Helper()
	token, err := jwtSvc.Issue(domain.Therapist{ID: "t1"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token.AccessToken
}

func TestLogin_IssuesToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-secreta"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash key: %v", err)
	}
	router, _ := newTestRouter(t, &mockProfileProvider{}, &mockProfileSearcher{}, &mockSimilarFinder{}, string(hash))

	body, _ := json.Marshal(map[string]string{"therapist_id": "t1", "key": "clave-secreta"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp service.AccessToken
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatalf("expected access token in response")
	}
}

func TestLogin_RejectsWrongKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-secreta"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash key: %v", err)
	}
	router, _ := newTestRouter(t, &mockProfileProvider{}, &mockProfileSearcher{}, &mockSimilarFinder{}, string(hash))

	body, _ := json.Marshal(map[string]string{"therapist_id": "t1", "key": "otra-clave"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGetProfile_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t, &mockProfileProvider{}, &mockProfileSearcher{}, &mockSimilarFinder{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles/alice", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	router, jwtSvc := newTestRouter(t, &mockProfileProvider{}, &mockProfileSearcher{}, &mockSimilarFinder{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles/alice", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtSvc))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetProfile_ReturnsStoredProfile(t *testing.T) {
	provider := &mockProfileProvider{profiles: map[string]domain.UserProfile{
		"alice": {UserID: "alice", QuickInsight: "steady week", UsablePosts: 12},
	}}
	router, jwtSvc := newTestRouter(t, provider, &mockProfileSearcher{}, &mockSimilarFinder{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles/alice", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtSvc))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got domain.UserProfile
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.UserID != "alice" || got.UsablePosts != 12 {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestRecompute_CallsPipeline(t *testing.T) {
	provider := &mockProfileProvider{}
	router, jwtSvc := newTestRouter(t, provider, &mockProfileSearcher{}, &mockSimilarFinder{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/profiles/alice/recompute", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtSvc))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if provider.recomputes != 1 {
		t.Fatalf("expected one recompute call, got %d", provider.recomputes)
	}
}

func TestRecompute_PipelineError(t *testing.T) {
	provider := &mockProfileProvider{err: errors.New("db down")}
	router, jwtSvc := newTestRouter(t, provider, &mockProfileSearcher{}, &mockSimilarFinder{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/profiles/alice/recompute", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtSvc))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestTherapistSearch_RejectsUnknownEmotion(t *testing.T) {
	router, jwtSvc := newTestRouter(t, &mockProfileProvider{}, &mockProfileSearcher{}, &mockSimilarFinder{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/therapist/search?emotion=rage", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtSvc))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTherapistSearch_ReturnsResults(t *testing.T) {
	searcher := &mockProfileSearcher{results: []domain.ProfileSummary{
		{UserID: "alice", PostCount: 40, DominantEmotion: domain.EmotionJoy},
	}}
	router, jwtSvc := newTestRouter(t, &mockProfileProvider{}, searcher, &mockSimilarFinder{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/therapist/search?emotion=joy", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtSvc))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Results []domain.ProfileSummary `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].UserID != "alice" {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
}

func TestSimilarPosts_RequiresPostID(t *testing.T) {
	router, jwtSvc := newTestRouter(t, &mockProfileProvider{}, &mockProfileSearcher{}, &mockSimilarFinder{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/therapist/similar_posts", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtSvc))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
