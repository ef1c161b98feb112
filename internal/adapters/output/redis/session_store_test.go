package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"whatsapp-leadbot/internal/domain"

	"github.com/go-redis/redis/v8"
)

// mockRedisClient is an in-memory RedisClient with optional overrides
type mockRedisClient struct {
	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DelFunc func(ctx context.Context, keys ...string) error

	mu          sync.Mutex
	data        map[string]string
	expirations map[string]time.Duration
}

func newMockRedisClient() *mockRedisClient {
	return &mockRedisClient{
		data:        make(map[string]string),
		expirations: make(map[string]time.Duration),
	}
}

func (m *mockRedisClient) Ping(ctx context.Context) error { return nil }

func (m *mockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	m.expirations[key] = expiration
	return nil
}

func (m *mockRedisClient) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (m *mockRedisClient) Del(ctx context.Context, keys ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, keys...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *mockRedisClient) Close() error { return nil }

const testUserID = "15551234567"

func TestRedisSessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("GetSession returns nil on missing key", func(t *testing.T) {
		store := NewRedisSessionStore(newMockRedisClient(), "")

		session, err := store.GetSession(ctx, testUserID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if session != nil {
			t.Errorf("expected nil session, got %+v", session)
		}
	})

	t.Run("UpdateSession stores JSON under prefixed key without expiry", func(t *testing.T) {
		client := newMockRedisClient()
		store := NewRedisSessionStore(client, "test:")

		session := domain.NewConversationSession(testUserID)
		session.Stage = domain.StageProductMenu
		session.ProductIndex = 3
		session.Data.Email = "jane@example.com"

		if err := store.UpdateSession(ctx, session); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := client.data["test:"+testUserID]; !ok {
			t.Fatalf("expected key test:%s to be set, got %v", testUserID, client.data)
		}
		if client.expirations["test:"+testUserID] != 0 {
			t.Errorf("expected no expiry, got %v", client.expirations["test:"+testUserID])
		}

		retrieved, err := store.GetSession(ctx, testUserID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if retrieved.Stage != domain.StageProductMenu || retrieved.ProductIndex != 3 || retrieved.Data.Email != "jane@example.com" {
			t.Errorf("expected round-tripped session, got %+v", retrieved)
		}
	})

	t.Run("DeleteSession removes the key and is idempotent", func(t *testing.T) {
		client := newMockRedisClient()
		store := NewRedisSessionStore(client, "")
		_ = store.UpdateSession(ctx, domain.NewConversationSession(testUserID))

		if err := store.DeleteSession(ctx, testUserID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := store.DeleteSession(ctx, testUserID); err != nil {
			t.Fatalf("expected no error on second delete, got %v", err)
		}
		if len(client.data) != 0 {
			t.Errorf("expected no keys left, got %v", client.data)
		}
	})

	t.Run("GetSession surfaces redis errors", func(t *testing.T) {
		client := newMockRedisClient()
		client.GetFunc = func(ctx context.Context, key string) (string, error) {
			return "", errors.New("connection refused")
		}
		store := NewRedisSessionStore(client, "")

		if _, err := store.GetSession(ctx, testUserID); err == nil {
			t.Error("expected error when redis is unavailable")
		}
	})

	t.Run("GetSession drops malformed entries", func(t *testing.T) {
		client := newMockRedisClient()
		client.data[DefaultKeyPrefix+testUserID] = "{not json"
		store := NewRedisSessionStore(client, "")

		session, err := store.GetSession(ctx, testUserID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if session != nil {
			t.Errorf("expected nil session, got %+v", session)
		}
		if _, ok := client.data[DefaultKeyPrefix+testUserID]; ok {
			t.Error("expected malformed key to be deleted")
		}
	})

	t.Run("UpdateSession surfaces redis errors", func(t *testing.T) {
		client := newMockRedisClient()
		client.SetFunc = func(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
			return errors.New("READONLY")
		}
		store := NewRedisSessionStore(client, "")

		if err := store.UpdateSession(ctx, domain.NewConversationSession(testUserID)); err == nil {
			t.Error("expected error when redis rejects the write")
		}
	})
}
