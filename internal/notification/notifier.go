package notification

import "context"

// Notifier is the single outbound boundary for WhatsApp messages. Delivery is
// fire-and-forget at every call site: there is no confirmation channel and a
// send failure must never undo the store mutation that preceded it.
type Notifier interface {
	Send(ctx context.Context, phone, message string) error
}
