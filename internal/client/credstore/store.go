// Package credstore persists client credentials (the auth token) across
// process restarts.
//
// The contract is intentionally forgiving: a broken storage medium must
// never take the application down. Implementations log failures and degrade
// to a no-op / empty value; callers treat a missing value as "not signed in"
// and move on.
package credstore

import "context"

// KeyAuthToken is the key under which the bearer token is persisted.
const KeyAuthToken = "authToken"

// Store is a scoped key-value credential store.
type Store interface {
	// Get returns the stored value, or "" when absent or unreadable.
	Get(ctx context.Context, key string) string

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string)

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string)

	// Clear deletes every stored credential.
	Clear(ctx context.Context)
}
