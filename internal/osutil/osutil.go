package osutil

import (
	"errors"
	"runtime"
)

const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const DirPermission = 0o755

const FilePermission = 0o600

var errUnsupportedPlatform = errors.New("unsupported platform")

// OpenCommand returns the command and arguments that open url in the
// default application of the current platform.
func OpenCommand(url string) (string, []string, error) {
	switch runtime.GOOS {
	case Linux:
		return "xdg-open", []string{url}, nil
	case Windows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	case Darwin:
		return "open", []string{url}, nil
	default:
		return "", nil, errUnsupportedPlatform
	}
}
