package guide

import (
	"context"
	"fmt"
	"io"

	"github.com/julianshen/stylegen/internal/provider"
)

// Config holds all pipeline configuration, fixed for the lifetime of a run.
type Config struct {
	RepoRoot   string
	OutputPath string
	MaxFiles   int
	Extensions []string
	Model      string
	MaxTokens  int
}

// Run executes the full extraction pipeline:
// scan -> read -> compose -> submit -> save.
// Empty scan or read results are clean early stops, not errors; the store is
// never invoked in those cases. Returns the session so callers can preview
// or refine the draft; the session is nil when the run stopped before a
// submission was made.
func Run(ctx context.Context, cfg Config, llm provider.LLMProvider, out io.Writer) (*Session, error) {
	fmt.Fprintf(out, "stylegen: scanning %s...\n", cfg.RepoRoot)
	candidates, err := Scan(cfg.RepoRoot, cfg.MaxFiles, cfg.Extensions, out)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Fprintln(out, "\nNo code files of the specified format found in the repository.")
		return nil, nil
	}

	samples, _ := ReadSamples(cfg.RepoRoot, candidates, out)
	if len(samples) == 0 {
		fmt.Fprintln(out, "\nNo code samples could be read from the files.")
		return nil, nil
	}

	prompt, err := Compose(samples)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	session := NewSession(llm, cfg.Model, cfg.MaxTokens, out)
	draft, err := session.Submit(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	NewStore(cfg.OutputPath, out).Save(draft, session)
	return session, nil
}
