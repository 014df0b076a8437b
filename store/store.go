// Package store connects to the data store and manages session state
package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/quiztimer/internal/apperr"
	"github.com/ayoisaiah/quiztimer/internal/osutil"
)

const (
	sessionBucket  = "sessions"
	settingsBucket = "settings"
)

var errQuizTimerRunning = &apperr.Error{
	Message: "is quiztimer already running? Only one instance can be active at a time",
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

type sessionStore struct {
	db *bolt.DB
	id []byte
}

func (s *sessionStore) Get(key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket)).Bucket(s.id)
		if b == nil {
			return ErrNotFound
		}

		v := b.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}

		// values are only valid for the life of the transaction
		value = append([]byte(nil), v...)

		return nil
	})

	return value, err
}

func (s *sessionStore) Set(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(sessionBucket)).CreateBucketIfNotExists(s.id)
		if err != nil {
			return err
		}

		return b.Put([]byte(key), value)
	})
}

func (s *sessionStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return deleteSession(tx, s.id)
	})
}

func deleteSession(tx *bolt.Tx, id []byte) error {
	sessions := tx.Bucket([]byte(sessionBucket))

	if sessions.Bucket(id) == nil {
		return nil
	}

	return sessions.DeleteBucket(id)
}

// Session returns the storage namespace of the specified session.
func (c *Client) Session(id string) Storage {
	return &sessionStore{
		db: c.DB,
		id: []byte(id),
	}
}

// Sessions lists the ids of all sessions with persisted state.
func (c *Client) Sessions() ([]string, error) {
	var ids []string

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			// nested buckets have a nil value
			if v == nil {
				ids = append(ids, string(k))
			}
		}

		return nil
	})

	return ids, err
}

// EndSession erases a session and all of its state.
func (c *Client) EndSession(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return deleteSession(tx, []byte(id))
	})
}

// Setting returns a process-wide preference.
func (c *Client) Setting(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(settingsBucket)).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}

		value = append([]byte(nil), v...)

		return nil
	})

	return value, err
}

// SetSetting stores a process-wide preference.
func (c *Client) SetSetting(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(key), value)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string, timeout time.Duration) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, berrors.ErrDatabaseOpen) ||
			errors.Is(err, berrors.ErrTimeout) {
			return nil, errQuizTimerRunning.Wrap(err)
		}

		return nil, err
	}

	return db, nil
}

// IsLocked reports whether err was caused by another process holding the
// database.
func IsLocked(err error) bool {
	return errors.Is(err, errQuizTimerRunning)
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	return newClient(dbPath, 1*time.Second)
}

// NewClientWithTimeout is like NewClient but waits at most timeout for the
// file lock.
func NewClientWithTimeout(dbPath string, timeout time.Duration) (*Client, error) {
	return newClient(dbPath, timeout)
}

func newClient(dbPath string, timeout time.Duration) (*Client, error) {
	db, err := openDB(dbPath, timeout)
	if err != nil {
		return nil, err
	}
	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(settingsBucket))

		return err
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Client{
		db,
	}, nil
}
