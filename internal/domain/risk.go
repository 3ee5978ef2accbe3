package domain

// RiskLevel es un nivel categórico de riesgo. Es orientativo, no diagnóstico.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// RiskAssessment agrupa los indicadores de riesgo derivados por umbrales
// sobre keywords, proporciones emocionales y sentimiento medio.
type RiskAssessment struct {
	Depression    RiskLevel `json:"depression"`
	Anxiety       RiskLevel `json:"anxiety"`
	PTSD          RiskLevel `json:"ptsd"`
	Schizophrenia RiskLevel `json:"schizophrenia"`
	Suicidal      RiskLevel `json:"suicidal"`
}

// DefaultRiskAssessment devuelve todos los indicadores en "low".
func DefaultRiskAssessment() RiskAssessment {
	return RiskAssessment{
		Depression:    RiskLow,
		Anxiety:       RiskLow,
		PTSD:          RiskLow,
		Schizophrenia: RiskLow,
		Suicidal:      RiskLow,
	}
}
