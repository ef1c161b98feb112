package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/output"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// DefaultKeyPrefix namespaces session keys
const DefaultKeyPrefix = "leadbot:session:"

var _ output.SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore struct - Output adapter keeping sessions in redis as JSON.
// Keys never expire; a session lives until the conversation completes.
type RedisSessionStore struct {
	cache     RedisClient
	keyPrefix string
}

// NewRedisSessionStore creates a session store on top of a redis client
func NewRedisSessionStore(cache RedisClient, keyPrefix string) *RedisSessionStore {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &RedisSessionStore{
		cache:     cache,
		keyPrefix: keyPrefix,
	}
}

func (s *RedisSessionStore) key(userID string) string {
	return s.keyPrefix + userID
}

// GetSession retrieves a conversation session by WhatsApp user ID.
// A missing key means no active conversation.
func (s *RedisSessionStore) GetSession(ctx context.Context, userID string) (*domain.ConversationSession, error) {
	val, err := s.cache.Get(ctx, s.key(userID))
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var session domain.ConversationSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		// Unreadable entries are dropped so the user can start over
		logrus.Warnf("Dropping malformed session for userID=%s: %v", userID, err)
		_ = s.cache.Del(ctx, s.key(userID))
		return nil, nil
	}
	return &session, nil
}

// UpdateSession creates or replaces the session for session.UserID
func (s *RedisSessionStore) UpdateSession(ctx context.Context, session *domain.ConversationSession) error {
	bytes, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.cache.Set(ctx, s.key(session.UserID), bytes, 0); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// DeleteSession removes a conversation session. Deleting a missing key is not an error.
func (s *RedisSessionStore) DeleteSession(ctx context.Context, userID string) error {
	if err := s.cache.Del(ctx, s.key(userID)); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
