package expload

import "context"

// Field is a single field/value entry destined for a hash in the store.
type Field struct {
	Name  string
	Value string
}

// Store abstracts the hash-write surface of the key-value store.
// Both operations have upsert semantics: the hash is created if absent and
// existing fields are overwritten. No atomicity is guaranteed across the
// entries of a SetFields call; on a mid-batch failure earlier entries stay
// committed and the error is returned.
type Store interface {
	// SetField writes one field into the named hash.
	SetField(ctx context.Context, key, field, value string) error

	// SetFields bulk-upserts fields into the named hash.
	// An empty fields slice is a no-op and must not issue a network write.
	SetFields(ctx context.Context, key string, fields []Field) error

	// Close releases the underlying connection.
	Close() error
}
