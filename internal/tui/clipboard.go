package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const clipboardTimeout = 5 * time.Second

// clipboardCandidates are tried in order when no command is configured. A
// candidate with env set is only considered when that variable is non-empty.
var clipboardCandidates = []struct {
	env  string
	argv []string
}{
	{"WAYLAND_DISPLAY", []string{"wl-copy"}},
	{"DISPLAY", []string{"xclip", "-selection", "clipboard"}},
	{"DISPLAY", []string{"xsel", "--clipboard", "--input"}},
	{"", []string{"pbcopy"}},
}

// clipboardArgv returns the command line that copies stdin to the clipboard.
func clipboardArgv(configured string) ([]string, error) {
	if configured != "" {
		argv := strings.Fields(configured)
		if len(argv) == 0 {
			return nil, errors.New("clipboard command is blank")
		}
		return argv, nil
	}

	for _, c := range clipboardCandidates {
		if c.env != "" && os.Getenv(c.env) == "" {
			continue
		}
		if _, err := exec.LookPath(c.argv[0]); err == nil {
			return c.argv, nil
		}
	}
	return nil, errors.New("no clipboard command found, set [clipboard] command")
}

// copyText pipes text into the clipboard command.
func copyText(text, configured string) error {
	argv, err := clipboardArgv(configured)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), clipboardTimeout)
	defer cancel()

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stdin = strings.NewReader(text)
	if out, err := c.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", argv[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}
