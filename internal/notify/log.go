package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogSender writes reminders to the application log instead of an
// external channel. Used when Twilio is not configured.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("sender", "log"))}
}

func (s *LogSender) Send(ctx context.Context, destination, message string) error {
	s.log.Info("Reminder (delivery disabled)",
		zap.String("destination", destination),
		zap.String("message", message),
	)
	return nil
}
