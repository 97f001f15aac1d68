package notification

import (
    "context"
    "log/slog"
)

const (
    // KindDeposit reports an applied deposit.
    KindDeposit = "deposit"
    // KindWithdrawal reports an applied withdrawal without commission.
    KindWithdrawal = "withdrawal"
    // KindOverdraft reports a corporate withdrawal that drove the account
    // negative and was charged an overdraft commission.
    KindOverdraft = "overdraft"
)

// Message describes a notification payload.
type Message struct {
    Kind        string
    Destination string
    Reference   string
    Body        string
}

// Notifier delivers notifications to downstream systems.
type Notifier interface {
    Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes notifications to the structured logger.
type LoggerNotifier struct {
    logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
    return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
    if n == nil || n.logger == nil {
        return nil
    }
    n.logger.Info("notification",
        slog.String("kind", message.Kind),
        slog.String("destination", message.Destination),
        slog.String("reference", message.Reference),
        slog.String("body", message.Body),
    )
    return nil
}
