// Package transport delivers composed messages to users. The chat platform
// is a collaborator; Sender is the seam the rest of the system talks to.
package transport

import "context"

// Sender delivers one text message to one user.
type Sender interface {
	Send(ctx context.Context, userID, text string) error
}

// NoopSender discards all messages. Useful for tests and dry runs.
type NoopSender struct{}

func (NoopSender) Send(context.Context, string, string) error { return nil }
