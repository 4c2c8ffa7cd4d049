package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)

	s, err := NewRedisStore(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisStore(t *testing.T) {
	roundtrip(t, newTestRedisStore(t))
}

func TestNewRedisStoreBadURL(t *testing.T) {
	if _, err := NewRedisStore(context.Background(), "://nope"); err == nil {
		t.Error("NewRedisStore with a malformed URL should fail")
	}
}

func TestRedisStorePersistsAcrossClients(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	first, err := NewRedisStore(ctx, "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	if err := first.Set(ctx, KeyDiagnosisResults, `{"portugues":{}}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	first.Close()

	second, err := NewRedisStore(ctx, "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("NewRedisStore (second): %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, KeyDiagnosisResults)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != `{"portugues":{}}` {
		t.Errorf("Get = %q", got)
	}
}
