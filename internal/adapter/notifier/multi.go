package notifier

import (
	"context"
	"errors"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// Multi fans a notification out to every notifier. All notifiers are tried
// even when one fails; the errors are joined.
type Multi []usecase.Notifier

// Notify implements usecase.Notifier.
func (m Multi) Notify(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, target := range m {
		if target == nil {
			continue
		}
		if err := target.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
