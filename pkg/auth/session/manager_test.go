package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type stubStore struct {
	values map[string]string
}

func newStubStore() *stubStore {
	return &stubStore{values: map[string]string{}}
}

func (s *stubStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	s.values[key] = "1"
	return nil
}

func (s *stubStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return "", redis.Nil
}

func (s *stubStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

type stubKeyer struct{}

func (stubKeyer) AccessSessionKey(accessID string) string {
	return "qt:session:" + accessID
}

func TestRegisterThenHasSession(t *testing.T) {
	store := newStubStore()
	m := &Manager{store: store, keyer: stubKeyer{}, ttl: time.Hour}

	accessID := NewAccessID()
	if err := m.Register(context.Background(), accessID); err != nil {
		t.Fatalf("register: %v", err)
	}

	ok, err := m.HasSession(context.Background(), accessID)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatalf("expected session to exist")
	}
}

func TestHasSessionMissing(t *testing.T) {
	m := &Manager{store: newStubStore(), keyer: stubKeyer{}, ttl: time.Hour}

	ok, err := m.HasSession(context.Background(), "nope")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatalf("expected no session")
	}
}

func TestRegisterRequiresAccessID(t *testing.T) {
	m := &Manager{store: newStubStore(), keyer: stubKeyer{}, ttl: time.Hour}
	if err := m.Register(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for blank access id")
	}
}
