package notifier

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iho/fintrack/internal/domain"
)

// LogNotifier writes notifications to a zerolog logger.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs n at info level.
func (n *LogNotifier) Notify(ctx context.Context, note domain.Notification) error {
	n.logger.Info().
		Str("event_type", note.EventType).
		Str("transaction_id", note.TransactionID).
		Str("variant", note.Variant).
		Str("title", note.Title).
		Msg(note.Description)
	return nil
}
