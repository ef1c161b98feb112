package output

import (
	"context"

	"whatsapp-leadbot/internal/domain"
)

// WhatsAppClient interface - Output port
// Defines what the application needs from the WhatsApp Cloud API
type WhatsAppClient interface {
	// SendTemplate sends a pre-approved message template to a user
	SendTemplate(ctx context.Context, request domain.TemplateMessageRequest) (*domain.MessageResponse, error)

	// SendText sends a plain text message to a user
	SendText(ctx context.Context, request domain.TextMessageRequest) (*domain.MessageResponse, error)

	// MarkRead marks an inbound message as read
	MarkRead(ctx context.Context, request domain.MarkReadRequest) error
}
