package gateway

import "context"

// Planner turns a free-text fitness request into a reply the gateway can
// send back to the user.
type Planner interface {
	PlanText(ctx context.Context, request string) (string, error)
}

// Messenger defines the interface for communication gateways (Telegram, etc.)
type Messenger interface {
	// Start begins the message listening loop
	Start() error
	// Send sends a message to a specific chat
	Send(chatID string, text string) error
	// Stop gracefully shuts down the gateway
	Stop() error
}
