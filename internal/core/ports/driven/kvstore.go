package driven

// KVStore is the durable key-value medium shared by every annotation
// collection. Each collection owns a distinct key; values are
// JSON-serialised text. Corruption or absence of one key must not
// affect any other.
type KVStore interface {
	// Get retrieves the raw value stored under key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) ([]byte, bool)

	// Set stores the raw value under key, replacing any previous
	// value. The write is durable when Set returns.
	Set(key string, value []byte) error

	// Delete removes the value stored under key. Deleting a missing
	// key is a no-op.
	Delete(key string) error

	// Keys returns all stored key names.
	Keys() []string

	// Close releases the underlying medium.
	Close() error

	// Path returns the storage location, for diagnostics.
	Path() string
}
