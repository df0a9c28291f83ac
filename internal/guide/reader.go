package guide

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ReadSamples reads each candidate beneath root as UTF-8 text and returns
// one CodeSample per file that read cleanly, preserving input order. A file
// that cannot be opened or decoded yields a Skip instead of failing the run.
func ReadSamples(root string, candidates []CandidatePath, out io.Writer) ([]CodeSample, []Skip) {
	var samples []CodeSample
	var skips []Skip
	totalLines := 0

	for _, c := range candidates {
		raw, err := os.ReadFile(filepath.Join(root, c.Path))
		if err != nil {
			log.Printf("WARNING: reading %s: %v", c.Path, err)
			skips = append(skips, Skip{Path: c.Path, Reason: err})
			continue
		}
		if !utf8.Valid(raw) {
			err := fmt.Errorf("not valid UTF-8 text")
			log.Printf("WARNING: decoding %s: %v", c.Path, err)
			skips = append(skips, Skip{Path: c.Path, Reason: err})
			continue
		}

		content := string(raw)
		lines := countLines(content)
		totalLines += lines

		samples = append(samples, CodeSample{
			RelPath: filepath.ToSlash(c.Path),
			Content: content,
			Lines:   lines,
		})
		fmt.Fprintf(out, "Read %d lines from %s\n", lines, c.Path)
	}

	fmt.Fprintf(out, "Total: %d lines of code read from %d files.\n", totalLines, len(samples))
	return samples, skips
}

// countLines counts newline-delimited segments. A trailing newline does not
// start a new segment, so "a\nb\n" and "a\nb" both count as 2.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
