package guide

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

// fenceLanguages maps file extensions to fenced-code-block language tags.
// Unknown extensions get a bare fence.
var fenceLanguages = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".jsx":  "javascript",
	".java": "java",
	".rs":   "rust",
	".rb":   "ruby",
	".c":    "c",
	".h":    "c",
	".cc":   "cpp",
	".cpp":  "cpp",
}

var stylePromptTmpl = template.Must(template.New("style").Parse(
	`I want you to analyze these source files from my repository and create a comprehensive coding style guide.

These files represent my personal coding style developed over time. Your task is to:

1. **Identify patterns and conventions** across all files
2. **Create a detailed markdown style guide** that captures my distinctive coding style
3. **Include specific examples** from my actual code
4. **Make it prescriptive** so another AI could replicate my style exactly

Analyze these aspects:

**Documentation:**
- Doc comment format and register
- Level of detail and which declarations get documented
- Module/file-level documentation patterns

**Typing:**
- Where and when type annotations appear
- Full typing or selective
- Patterns for compound and optional types

**Naming Conventions:**
- Variable naming (length, descriptiveness, patterns)
- Function naming (verbs, patterns)
- Type and constant naming
- Private/exported member conventions

**Code Organization:**
- Import ordering and grouping
- Declaration ordering within a file
- File and directory structure patterns

**Comments:**
- When comments appear at all
- Inline vs block comments
- Comment style and detail level

**Formatting:**
- Line length preferences
- Indentation and blank line usage
- String quoting preferences

**Idioms:**
- Characteristic language constructs
- Error and edge-case handling patterns
- Iteration and data-shaping preferences

**Distinctive Patterns:**
- Any unique or characteristic patterns you notice
- Preferred libraries or approaches
- Code complexity preferences

Here are my source files:

{{.Combined}}

Create a markdown document with clear sections, examples, and actionable rules.
Format it as a professional style guide that could be given to a coding agent.`))

// Compose renders the full analysis request for the given samples: the fixed
// instruction block followed by a verbatim per-file rendering, each file
// demarcated by its relative path and wrapped in a fenced code block. The
// render is pure templating; identical input order yields byte-identical
// output. No size limit is enforced here: an oversized prompt is the service
// boundary's failure to report.
func Compose(samples []CodeSample) (string, error) {
	sections := make([]string, len(samples))
	for i, s := range samples {
		sections[i] = fmt.Sprintf("### File: %s\n```%s\n%s\n```", s.RelPath, fenceLang(s.RelPath), s.Content)
	}

	var buf bytes.Buffer
	err := stylePromptTmpl.Execute(&buf, struct{ Combined string }{
		Combined: strings.Join(sections, "\n\n"),
	})
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return buf.String(), nil
}

func fenceLang(path string) string {
	return fenceLanguages[filepath.Ext(path)]
}
