package notify

import (
	"context"
)

// Sender delivers a rendered reminder to a destination. Implementations
// report failure to the caller; nothing here retries.
type Sender interface {
	Send(ctx context.Context, destination, message string) error
}
