package session

import (
	"context"
	"encoding/json"
	"errors"
)

// Well-known session keys. These mirror the persisted local state the
// dashboard shell relies on between restarts.
const (
	KeyTenantID  = "tenantId"
	KeyAuthToken = "authToken"
	KeyUser      = "user"
)

// PlaceholderUserID is attached to outgoing requests when no stored
// identity carries a user id.
const PlaceholderUserID = "demo-user-123"

// ErrKeyNotFound is returned when a session key has no value
var ErrKeyNotFound = errors.New("session key not found")

// Store persists small key/value session state (auth token, active tenant id,
// user identity blob). Values survive process restarts for the file and redis
// backends; the memory backend is for tests.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)
	// Set writes the value for key
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}

// User is the persisted identity blob, stored as JSON under KeyUser.
type User struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Identity is the per-request identity envelope, derived from the store at
// the moment a request is dispatched. It is never cached across calls, so a
// tenant switch or re-authentication takes effect on the very next request.
type Identity struct {
	AuthToken string
	UserID    string
}

// Snapshot reads the current identity from the store. Absence of a token or a
// stored user is not an error at this layer; the user id falls back to the
// fixed placeholder.
func Snapshot(ctx context.Context, s Store) Identity {
	id := Identity{UserID: PlaceholderUserID}

	if token, err := s.Get(ctx, KeyAuthToken); err == nil && token != "" {
		id.AuthToken = token
	}

	if raw, err := s.Get(ctx, KeyUser); err == nil && raw != "" {
		var u User
		if err := json.Unmarshal([]byte(raw), &u); err == nil && u.UserID != "" {
			id.UserID = u.UserID
		}
	}

	return id
}
