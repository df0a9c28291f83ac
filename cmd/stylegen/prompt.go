// cmd/stylegen/prompt.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// stdinIsTerminal reports whether stdin is attached to a terminal, i.e.
// whether interactive prompting is possible at all.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptRepoPath asks for a repository path with an interactive form.
func promptRepoPath() (string, error) {
	var path string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to your code repository").
				Value(&path),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("reading repository path: %w", err)
	}
	return strings.TrimSpace(path), nil
}
