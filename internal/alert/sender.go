package alert

import (
	"context"
	"errors"

	"aura-mind/internal/domain"
)

// Sender define la interfaz para notificar riesgos altos detectados en una
// corrida del pipeline. El envío es best-effort: nunca falla la corrida.
type Sender interface {
	SendRiskAlert(ctx context.Context, userID string, risks domain.RiskAssessment, summary string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendRiskAlert(_ context.Context, _ string, _ domain.RiskAssessment, _ string) error {
	if s.reason == "" {
		return errors.New("alert sender disabled")
	}
	return errors.New(s.reason)
}
