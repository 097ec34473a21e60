// Package ai defines the conversational responder the message router
// dispatches AI-directed messages to.
package ai

import "context"

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one prior message of a conversation. Author identity is erased,
// only the role side and the text survive in the transcript.
type Turn struct {
	Role string
	Text string
}

// Responder answers a message given the prior turn history, in stored order.
// The reply text is opaque and stored verbatim as message content. Timeouts
// are the implementation's own business, the router enforces none.
type Responder interface {
	Respond(ctx context.Context, text string, history []Turn) (string, error)
}
