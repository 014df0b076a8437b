package timer

import (
	"bufio"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ayoisaiah/quiztimer/countdown"
)

// Status is what a running instance publishes about its countdown so that
// other processes can report it without opening the database.
type Status struct {
	Deadline time.Time `json:"deadline"`
	Session  string    `json:"session"`
}

// StatusFile is a countdown.Display that keeps the status file in step with
// the deadline before passing each call on to next.
type StatusFile struct {
	next     countdown.Display
	log      *slog.Logger
	deadline time.Time
	path     string
	session  string
	mu       sync.Mutex
}

// NewStatusFile returns a display writing the status of session to path.
// next may be nil.
func NewStatusFile(
	path, session string,
	next countdown.Display,
	log *slog.Logger,
) *StatusFile {
	if log == nil {
		log = slog.Default()
	}

	return &StatusFile{
		path:    path,
		session: session,
		next:    next,
		log:     log,
	}
}

func (s *StatusFile) Show(p countdown.Payload) {
	s.mu.Lock()

	if !p.Deadline.Equal(s.deadline) {
		err := writeStatusFile(s.path, &Status{
			Session:  s.session,
			Deadline: p.Deadline,
		})
		if err != nil {
			s.log.Warn("unable to write status file", slog.Any("error", err))
		} else {
			s.deadline = p.Deadline
		}
	}

	s.mu.Unlock()

	if s.next != nil {
		s.next.Show(p)
	}
}

// Terminate removes the status file.
func (s *StatusFile) Terminate(message string) {
	s.Remove()

	if s.next != nil {
		s.next.Terminate(message)
	}
}

// Remove deletes the status file if present.
func (s *StatusFile) Remove() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deadline = time.Time{}

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn("unable to remove status file", slog.Any("error", err))
	}
}

func writeStatusFile(path string, status *Status) (err error) {
	statusFile, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(status)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// ReadStatus reads the status file at path. A missing file yields
// os.ErrNotExist.
func ReadStatus(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
