package timer

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/quiztimer/internal/osutil"
)

// URLPlaceholder is replaced by the destination URL in a custom open
// command.
const URLPlaceholder = "{url}"

var errEmptyOpenCmd = errors.New("open command is empty")

// Browser is a countdown.Navigator that opens the results page and then
// unloads the current page.
type Browser struct {
	start   func(name string, args ...string) error
	unload  func()
	log     *slog.Logger
	baseURL string
	openCmd string
}

// NewBrowser returns a navigator resolving destinations against baseURL.
// openCmd overrides the platform opener; unload runs after every attempt
// and may be nil.
func NewBrowser(
	baseURL, openCmd string,
	unload func(),
	log *slog.Logger,
) *Browser {
	if log == nil {
		log = slog.Default()
	}

	return &Browser{
		baseURL: baseURL,
		openCmd: openCmd,
		unload:  unload,
		log:     log,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// URL joins the base URL and destination.
func (b *Browser) URL(destination string) string {
	return strings.TrimRight(b.baseURL, "/") +
		"/" + strings.TrimLeft(destination, "/")
}

func (b *Browser) command(url string) (string, []string, error) {
	if b.openCmd == "" {
		return osutil.OpenCommand(url)
	}

	cmdSlice, err := shellquote.Split(b.openCmd)
	if err != nil {
		return "", nil, fmt.Errorf("unable to parse open_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return "", nil, errEmptyOpenCmd
	}

	var replaced bool

	for i := range cmdSlice {
		if strings.Contains(cmdSlice[i], URLPlaceholder) {
			cmdSlice[i] = strings.ReplaceAll(cmdSlice[i], URLPlaceholder, url)
			replaced = true
		}
	}

	if !replaced {
		cmdSlice = append(cmdSlice, url)
	}

	return cmdSlice[0], cmdSlice[1:], nil
}

// Navigate opens destination in the browser.
func (b *Browser) Navigate(destination string) error {
	if b.unload != nil {
		defer b.unload()
	}

	url := b.URL(destination)

	name, args, err := b.command(url)
	if err != nil {
		return err
	}

	b.log.Info("opening results page", slog.String("url", url))

	return b.start(name, args...)
}

// RunCommand runs a shell-quoted command and waits for it to finish. An
// empty command does nothing.
func RunCommand(command string) error {
	if command == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("unable to parse submit_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
