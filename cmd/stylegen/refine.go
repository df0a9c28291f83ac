// cmd/stylegen/refine.go
package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianshen/stylegen/internal/guide"
)

// refineLoop repeatedly asks for a refinement instruction, resubmits the
// full conversation so the model keeps context, and re-saves the draft.
// An empty instruction ends the loop.
func refineLoop(ctx context.Context, session *guide.Session, outputPath string, out io.Writer) error {
	store := guide.NewStore(outputPath, out)

	for {
		var instruction string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Refinement instruction").
					Description("Leave empty to finish.").
					Value(&instruction),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("reading refinement instruction: %w", err)
		}

		instruction = strings.TrimSpace(instruction)
		if instruction == "" {
			return nil
		}

		draft, err := session.Refine(ctx, instruction)
		if err != nil {
			return fmt.Errorf("refining draft: %w", err)
		}
		store.Save(draft, session)
	}
}
