// cmd/stylegen/banner.go
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bannerStyle uses an adaptive color scheme so the header reads well on
// both light and dark terminals.
var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#EEEEEE"}).
	Bold(true)

const bannerTitle = "Coding Style Extractor"

func printBanner(out io.Writer) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, bannerStyle.Render(bannerTitle))
	fmt.Fprintln(out, rule)
}

func printEpilogue(out io.Writer, outputPath string) {
	fmt.Fprintln(out, "\nStyle extraction complete")
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Review the draft: %s\n", outputPath)
	fmt.Fprintln(out, "  2. Refine it with --refine or in a chat session")
	fmt.Fprintln(out, "  3. Hand the final guide to your coding agent")
}
