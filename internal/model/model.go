package model

import (
	"context"
	"errors"
)

// ErrUnavailable señala que el modelo remoto falló o no respondió a tiempo.
// El pipeline lo trata como recuperable: el post se marca skipped.
var ErrUnavailable = errors.New("model unavailable")

// Encoder mapea texto a un vector denso de dimensión fija. Es una función
// pura para una versión fija del modelo; Version() identifica esa versión y
// viaja junto a cada embedding almacenado.
type Encoder interface {
	Encode(ctx context.Context, texts []string) ([][]float32, error)
	Version() string
}

// Classifier mapea texto a una distribución de probabilidad sobre el set
// cerrado de emociones. Mismo contrato de determinismo y versionado.
type Classifier interface {
	Classify(ctx context.Context, text string) (map[string]float64, error)
	Version() string
}
