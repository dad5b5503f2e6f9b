// Package store provides durable keyed storage for drafts, the auth token
// and the cached profile. The builder session is the only writer for its
// draft keys; login code writes the token and profile keys. Keys are
// independent namespaces, so no cross-key coordination is needed.
package store

import "context"

// Keys for the client's persisted state.
const (
	KeyCVData       = "cvData"
	KeyCoverLetter  = "coverLetterData"
	KeyToken        = "token"
	KeyPersonalInfo = "personalInfo"
)

// Store is a keyed byte store. Set must be durable before it returns;
// overwrites are last-write-wins.
type Store interface {
	// Get returns the stored value. The second return is false when the
	// key has never been set.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes the value, replacing any prior value under the key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
