package output

import (
	"context"

	"whatsapp-leadbot/internal/domain"
)

// SessionStore interface - Output port
// Defines what the application needs for keeping conversation sessions.
// A session exists only while a user's conversation is active; there is no expiry.
// Implementations must be safe for concurrent use by different users.
type SessionStore interface {
	// GetSession retrieves a conversation session by WhatsApp user ID.
	// Returns nil if the user has no active conversation.
	// Returns an error only if there is a storage access failure.
	GetSession(ctx context.Context, userID string) (*domain.ConversationSession, error)

	// UpdateSession creates or replaces the session for session.UserID.
	UpdateSession(ctx context.Context, session *domain.ConversationSession) error

	// DeleteSession removes a conversation session by WhatsApp user ID.
	// This operation is idempotent - deleting a non-existent session
	// should not return an error.
	DeleteSession(ctx context.Context, userID string) error
}
