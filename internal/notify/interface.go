package notify

import "context"

// Notifier announces a refreshed benchmark table.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Nop discards every notification.
type Nop struct{}

func (Nop) Notify(ctx context.Context, message string) error { return nil }
