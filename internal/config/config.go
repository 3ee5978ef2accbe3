package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Endpoint OpenAI-compatible que sirve embeddings y clasificación emocional.
	ModelBaseURL   string `env:"MODEL_BASE_URL" envDefault:"http://localhost:8081/v1"`
	ModelAPIKey    string `env:"MODEL_API_KEY"`
	EmbeddingModel string `env:"EMBEDDING_MODEL" envDefault:"all-MiniLM-L6-v2"`
	EmotionModel   string `env:"EMOTION_MODEL" envDefault:"distilbert-emotion"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	MemoTTLHours  int    `env:"MEMO_TTL_HOURS" envDefault:"168"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	// Hash bcrypt de la clave compartida de acceso para terapeutas.
	TherapistKeyHash string `env:"THERAPIST_KEY_HASH"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`
	AlertEmail   string `env:"ALERT_EMAIL"`

	WorkerPoolSize int `env:"WORKER_POOL_SIZE" envDefault:"8"`
	ModelTimeoutMS int `env:"MODEL_TIMEOUT_MS" envDefault:"10000"`
	ClusterKMin    int `env:"CLUSTER_K_MIN" envDefault:"2"`
	ClusterKMax    int `env:"CLUSTER_K_MAX" envDefault:"6"`
	ClusterSeed    int `env:"CLUSTER_SEED" envDefault:"42"`
	ClusterMaxIter int `env:"CLUSTER_MAX_ITER" envDefault:"100"`
	MinUsablePosts int `env:"MIN_USABLE_POSTS" envDefault:"5"`
	TrendBucketHrs int `env:"TREND_BUCKET_HOURS" envDefault:"24"`
	ForecastDays   int `env:"FORECAST_DAYS" envDefault:"7"`

	SentimentFeatureWeight float64 `env:"SENTIMENT_FEATURE_WEIGHT" envDefault:"1.0"`
	EmotionFeatureWeight   float64 `env:"EMOTION_FEATURE_WEIGHT" envDefault:"0.5"`
	RiskModerateThreshold  float64 `env:"RISK_MODERATE_THRESHOLD" envDefault:"0.33"`
	RiskHighThreshold      float64 `env:"RISK_HIGH_THRESHOLD" envDefault:"0.66"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Pipeline agrupa los parámetros que se pasan explícitamente por el pipeline.
// No hay estado global: cada corrida recibe su propia copia.
type Pipeline struct {
	WorkerPoolSize int
	ModelTimeout   time.Duration

	KMin          int
	KMax          int
	Seed          int64
	MaxIterations int

	SentimentFeatureWeight float64
	EmotionFeatureWeight   float64

	MinUsablePosts int
	TrendBucket    time.Duration
	ForecastDays   int

	RiskModerateThreshold float64
	RiskHighThreshold     float64
}

// Pipeline deriva la configuración del pipeline desde el Config del servicio.
func (c *Config) Pipeline() Pipeline {
	p := DefaultPipeline()
	if c.WorkerPoolSize > 0 {
		p.WorkerPoolSize = c.WorkerPoolSize
	}
	if c.ModelTimeoutMS > 0 {
		p.ModelTimeout = time.Duration(c.ModelTimeoutMS) * time.Millisecond
	}
	if c.ClusterKMin >= 2 {
		p.KMin = c.ClusterKMin
	}
	if c.ClusterKMax >= p.KMin {
		p.KMax = c.ClusterKMax
	}
	p.Seed = int64(c.ClusterSeed)
	if c.ClusterMaxIter > 0 {
		p.MaxIterations = c.ClusterMaxIter
	}
	p.SentimentFeatureWeight = c.SentimentFeatureWeight
	p.EmotionFeatureWeight = c.EmotionFeatureWeight
	if c.MinUsablePosts > 0 {
		p.MinUsablePosts = c.MinUsablePosts
	}
	if c.TrendBucketHrs > 0 {
		p.TrendBucket = time.Duration(c.TrendBucketHrs) * time.Hour
	}
	if c.ForecastDays > 0 {
		p.ForecastDays = c.ForecastDays
	}
	if c.RiskModerateThreshold > 0 {
		p.RiskModerateThreshold = c.RiskModerateThreshold
	}
	if c.RiskHighThreshold > 0 {
		p.RiskHighThreshold = c.RiskHighThreshold
	}
	return p
}

// DefaultPipeline devuelve los parámetros documentados por defecto.
func DefaultPipeline() Pipeline {
	return Pipeline{
		WorkerPoolSize:         8,
		ModelTimeout:           10 * time.Second,
		KMin:                   2,
		KMax:                   6,
		Seed:                   42,
		MaxIterations:          100,
		SentimentFeatureWeight: 1.0,
		EmotionFeatureWeight:   0.5,
		MinUsablePosts:         5,
		TrendBucket:            24 * time.Hour,
		ForecastDays:           7,
		RiskModerateThreshold:  0.33,
		RiskHighThreshold:      0.66,
	}
}
