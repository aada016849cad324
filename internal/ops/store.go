// Package ops implements the flag and check operations over a loaded store
// snapshot.
package ops

// Store defines the persistence interface required by flag and check
// operations. The concrete implementation is storage.Storage, but this
// interface allows alternative backends (in-memory, etc.) for testing.
type Store interface {
	// LoadStore returns the full raw store text, creating an empty store
	// if none exists.
	LoadStore() (string, error)
	// AppendEntry appends entry plus a newline to the store. It must not
	// deduplicate; callers check existence first.
	AppendEntry(entry string) error
}

// Logger is the logging capability injected into operations. Messages go to
// the store's log file, not to user-facing output.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

// Stats tallies one command invocation: Matched counts stored entries for
// flag and found images for check.
type Stats struct {
	Total   int
	Matched int
}
