package session

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Get(ctx, KeyTenantID); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}

	if err := store.Set(ctx, KeyTenantID, "acme-corp"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get(ctx, KeyTenantID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "acme-corp" {
		t.Errorf("Get() = %s, want acme-corp", got)
	}

	if err := store.Delete(ctx, KeyTenantID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, KeyTenantID); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if err := store.Set(ctx, KeyTenantID, "wayne-enterprises"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, KeyAuthToken, "token-123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// A fresh store over the same file sees the persisted values
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() reopen error = %v", err)
	}

	got, err := reopened.Get(ctx, KeyTenantID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "wayne-enterprises" {
		t.Errorf("Get() = %s, want wayne-enterprises", got)
	}

	if err := reopened.Delete(ctx, KeyAuthToken); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	reopenedAgain, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() reopen error = %v", err)
	}
	if _, err := reopenedAgain.Get(ctx, KeyAuthToken); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound after delete+reopen, got %v", err)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if _, err := store.Get(context.Background(), KeyTenantID); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store falls back to placeholder", func(t *testing.T) {
		id := Snapshot(ctx, NewMemoryStore())
		if id.AuthToken != "" {
			t.Errorf("Expected empty token, got %s", id.AuthToken)
		}
		if id.UserID != PlaceholderUserID {
			t.Errorf("Expected placeholder user id, got %s", id.UserID)
		}
	})

	t.Run("derives user id from stored identity", func(t *testing.T) {
		store := NewMemoryStore()
		user, _ := json.Marshal(User{UserID: "u-42", Name: "Sarah Johnson"})
		if err := store.Set(ctx, KeyUser, string(user)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := store.Set(ctx, KeyAuthToken, "bearer-token"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		id := Snapshot(ctx, store)
		if id.UserID != "u-42" {
			t.Errorf("Expected u-42, got %s", id.UserID)
		}
		if id.AuthToken != "bearer-token" {
			t.Errorf("Expected bearer-token, got %s", id.AuthToken)
		}
	})

	t.Run("malformed identity blob falls back to placeholder", func(t *testing.T) {
		store := NewMemoryStore()
		if err := store.Set(ctx, KeyUser, "{not json"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		id := Snapshot(ctx, store)
		if id.UserID != PlaceholderUserID {
			t.Errorf("Expected placeholder user id, got %s", id.UserID)
		}
	})

	t.Run("identity blob without user id falls back to placeholder", func(t *testing.T) {
		store := NewMemoryStore()
		user, _ := json.Marshal(User{Name: "No ID"})
		if err := store.Set(ctx, KeyUser, string(user)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		id := Snapshot(ctx, store)
		if id.UserID != PlaceholderUserID {
			t.Errorf("Expected placeholder user id, got %s", id.UserID)
		}
	})
}
