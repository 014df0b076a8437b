package store

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Storage is a key-value capability scoped to a single quiz session.
type Storage interface {
	// Get returns the value stored under key or ErrNotFound
	Get(key string) ([]byte, error)
	// Set stores value under key, overwriting any previous value
	Set(key string, value []byte) error
	// Clear erases everything stored in the session
	Clear() error
}

// DB is the database storage interface.
type DB interface {
	// Session returns the storage namespace of the specified session
	Session(id string) Storage
	// Sessions lists the ids of all sessions with persisted state
	Sessions() ([]string, error)
	// EndSession erases a session and all of its state
	EndSession(id string) error
	// Setting returns a process-wide preference or ErrNotFound
	Setting(key string) ([]byte, error)
	// SetSetting stores a process-wide preference
	SetSetting(key string, value []byte) error
	// Close ends the database connection
	Close() error
}
