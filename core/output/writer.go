// Package output handles file naming and writing for LinkPipe outputs.
// Filenames are derived from the source (e.g., example_com_docs_links.md).
// An output dir of "-" sends everything to stdout instead.
package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Stdout is the output dir value that writes to standard output.
const Stdout = "-"

// Writer writes rendered output to disk or stdout.
type Writer struct {
	OutputDir string
	stdout    io.Writer
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == Stdout {
		return &Writer{OutputDir: Stdout, stdout: os.Stdout}, nil
	}
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// NewStream creates a Writer that writes everything to w.
func NewStream(w io.Writer) *Writer {
	return &Writer{OutputDir: Stdout, stdout: w}
}

// Write stores the rendered links for source and returns where they went.
// Filename: domain_path_links.ext (e.g., example_com_docs_links.md).
func (w *Writer) Write(source string, data []byte, ext string) (string, error) {
	if w.OutputDir == Stdout {
		if _, err := w.stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return "stdout", nil
	}

	name := filenameFromSource(source) + "_links"
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// filenameFromSource converts a URL or local path into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
func filenameFromSource(source string) string {
	parsed, err := url.Parse(source)
	if err != nil {
		// Fallback: sanitize the raw string.
		return sanitize(source)
	}

	var parts []string
	if parsed.Host != "" {
		parts = append(parts, sanitize(parsed.Host))
	}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			if seg == "." || seg == ".." || seg == "" {
				continue
			}
			parts = append(parts, sanitize(seg))
		}
	}
	if len(parts) == 0 {
		return "page"
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
