// cmd/stylegen/preview.go
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/julianshen/stylegen/internal/guide"
)

// showPreview renders the current draft as styled terminal markdown.
// Preview failures degrade to a notice; the draft on disk is unaffected.
func showPreview(session *guide.Session, out io.Writer) {
	draft, ok := session.Draft()
	if !ok {
		return
	}

	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Fprintf(out, "preview unavailable: %v\n", err)
		return
	}

	styled, err := r.Render(draft)
	if err != nil {
		fmt.Fprintf(out, "preview unavailable: %v\n", err)
		return
	}
	fmt.Fprint(out, styled)
}
