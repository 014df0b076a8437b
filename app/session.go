package app

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var errSessionRequired = errors.New(
	"a quiz session is required: pass --session or set " + envSession,
)

// sessionID returns id or, when it is empty, a newly generated one. created
// reports whether the id was generated.
func sessionID(id string) (string, bool) {
	if id != "" {
		return id, false
	}

	return uuid.NewString(), true
}

// requireSession returns the session named on the command line.
func requireSession(ctx *cli.Context) (string, error) {
	id := strings.TrimSpace(ctx.String("session"))
	if id == "" {
		return "", errSessionRequired
	}

	return id, nil
}
