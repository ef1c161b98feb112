package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/output"
	"whatsapp-leadbot/pkg/metrics"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter for in-memory session storage
// Uses sync.Map for thread-safe concurrent access to conversation sessions.
// Sessions are stored and returned as copies so callers never share state.
type MemorySessionStore struct {
	sessions sync.Map
	count    atomic.Int64
}

// NewMemorySessionStore creates a new, empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

// GetSession retrieves a conversation session by WhatsApp user ID.
// Returns nil if the user has no active conversation.
func (m *MemorySessionStore) GetSession(ctx context.Context, userID string) (*domain.ConversationSession, error) {
	value, exists := m.sessions.Load(userID)
	if !exists {
		return nil, nil
	}

	session, ok := value.(*domain.ConversationSession)
	if !ok {
		// If data is malformed, delete and return nil
		_ = m.DeleteSession(ctx, userID)
		return nil, nil
	}

	return session.Clone(), nil
}

// UpdateSession creates or replaces the session for session.UserID
func (m *MemorySessionStore) UpdateSession(ctx context.Context, session *domain.ConversationSession) error {
	if _, loaded := m.sessions.Swap(session.UserID, session.Clone()); !loaded {
		metrics.SetActiveSessions(m.count.Add(1))
	}
	return nil
}

// DeleteSession removes a conversation session by WhatsApp user ID.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (m *MemorySessionStore) DeleteSession(ctx context.Context, userID string) error {
	if _, loaded := m.sessions.LoadAndDelete(userID); loaded {
		metrics.SetActiveSessions(m.count.Add(-1))
	}
	return nil
}

// Len returns the number of active conversations
func (m *MemorySessionStore) Len() int {
	return int(m.count.Load())
}
