// Package utils holds small text helpers shared by the API and the
// automation pipeline.
package utils

import (
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	wordSplit    = regexp.MustCompile(`\S+`)
)

// Words read per minute, used for the reading time estimate.
const readingSpeed = 200

// Slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single hyphen.
func Slugify(s string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// UniqueSlug appends a short random suffix to base. Callers use it when
// the plain slug already exists.
func UniqueSlug(base string) (string, error) {
	suffix, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 6)
	if err != nil {
		return "", err
	}
	return base + "-" + suffix, nil
}

// WordCount counts whitespace-separated tokens in s.
func WordCount(s string) int {
	return len(wordSplit.FindAllString(s, -1))
}

// ReadingTime estimates reading time in minutes, never less than 1 for
// non-empty text.
func ReadingTime(s string) int {
	words := WordCount(s)
	if words == 0 {
		return 0
	}
	minutes := (words + readingSpeed - 1) / readingSpeed
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Truncate cuts s to at most max runes, appending an ellipsis when it
// actually truncated. max is assumed to be at least 3.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max-3]), " ") + "..."
}
