// Package ingestion acquires job description, resume and profile text from
// literal strings, files and streams.
package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	excessiveBlankLines = regexp.MustCompile(`\n\n\n+`)
	horizontalSpace     = regexp.MustCompile(`[ \t]+`)
)

// CleanText normalizes line endings, collapses runs of spaces and blank lines,
// and trims the result
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Collapse horizontal whitespace per line
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalSpace.ReplaceAllString(line, " "))
	}
	content = strings.Join(lines, "\n")

	// 3. Max 2 consecutive newlines
	content = excessiveBlankLines.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}

// ReadText reads all of r and returns the cleaned text
func ReadText(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return CleanText(string(content)), nil
}

// Hash computes the SHA256 hex digest of content
func Hash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
