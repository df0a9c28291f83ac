package guide

import (
	"fmt"
	"io"
	"os"
)

// Store persists the latest draft to durable storage.
type Store struct {
	path string
	out  io.Writer
}

// NewStore creates a Store writing to the given output path.
func NewStore(path string, out io.Writer) *Store {
	return &Store{path: path, out: out}
}

// Save writes content to the configured path, overwriting any existing
// file. Empty content falls back to the session's current draft; with
// neither, nothing is written and an informational message is reported.
// A write failure is reported to the operator but not returned: the
// analysis already completed, persistence is best-effort.
func (st *Store) Save(content string, session *Session) {
	if content == "" && session != nil {
		if draft, ok := session.Draft(); ok {
			content = draft
		}
	}
	if content == "" {
		fmt.Fprintln(st.out, "No draft to save.")
		return
	}

	if err := os.WriteFile(st.path, []byte(content), 0o644); err != nil {
		fmt.Fprintf(st.out, "Error saving draft: %v\n", err)
		return
	}
	fmt.Fprintf(st.out, "Saved draft to: %s\n", st.path)
}
