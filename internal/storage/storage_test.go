package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// roundtrip exercises the Store contract shared by every backend.
func roundtrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, KeySession); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty store: err = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, KeySession, `{"loggedIn":true}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, KeySession)
	if err != nil {
		t.Fatalf("Get after Set: %v", err)
	}
	if got != `{"loggedIn":true}` {
		t.Errorf("Get = %q, want the stored blob", got)
	}

	// Overwrite wins.
	if err := s.Set(ctx, KeySession, `{"loggedIn":false}`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = s.Get(ctx, KeySession)
	if got != `{"loggedIn":false}` {
		t.Errorf("Get after overwrite = %q", got)
	}

	if err := s.Remove(ctx, KeySession); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Get(ctx, KeySession); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Remove: err = %v, want ErrNotFound", err)
	}

	// Removing an absent key is not an error.
	if err := s.Remove(ctx, "souconcursado.never_set"); err != nil {
		t.Errorf("Remove of absent key: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	roundtrip(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	roundtrip(t, s)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.Set(ctx, KeyUserProfile, `{"profileId":"jurista_publico"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Get(ctx, KeyUserProfile)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got != `{"profileId":"jurista_publico"}` {
		t.Errorf("Get after reopen = %q", got)
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path); err == nil {
		t.Error("NewFileStore on a corrupt file should fail")
	}
}
