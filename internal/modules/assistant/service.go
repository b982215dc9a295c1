package assistant

import (
	"context"
	"time"

	"github.com/revpilot/core/internal/pkg/metrics"
	"go.uber.org/zap"
)

// Service is the keyword-routed chat assistant: classify → assemble → render.
type Service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger.Named("AssistantService")}
}

// Chat runs the end-to-end pipeline for one message. Context-fetch failures
// degrade to partial reports and never surface as errors.
func (s *Service) Chat(ctx context.Context, message string) *ChatResponse {
	start := time.Now()

	flags := Classify(message)
	data := s.assemble(ctx, flags)
	report := renderReport(message, data)

	if data.Error != "" {
		s.logger.Warn("chat context degraded", zap.String("error", data.Error))
	}
	metrics.AssistantChats.Inc()
	metrics.AssistantChatDuration.Observe(time.Since(start).Seconds())

	return &ChatResponse{
		Message:          report,
		Timestamp:        time.Now(),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}
