package input

import (
	"context"

	"whatsapp-leadbot/internal/domain"
)

// ConversationService interface - Input port (use case)
// Defines what the application can do with inbound WhatsApp messages
type ConversationService interface {
	// HandleInbound advances the sender's conversation by one message.
	// It returns an error only when the conversation state or the collected
	// lead could not be stored; outbound delivery failures are not reported.
	HandleInbound(ctx context.Context, event domain.InboundEvent) error
}
