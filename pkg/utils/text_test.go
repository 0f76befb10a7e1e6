package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Digital Transformation in Kenya", "digital-transformation-in-kenya"},
		{"  AI & Machine Learning!  ", "ai-machine-learning"},
		{"Fintech: Brazil's 2025 outlook", "fintech-brazil-s-2025-outlook"},
		{"---", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), c.in)
	}
}

func TestUniqueSlug(t *testing.T) {
	slug, err := UniqueSlug("digital-kenya")
	require.NoError(t, err)
	assert.Regexp(t, `^digital-kenya-[0-9a-z]{6}$`, slug)
}

func TestWordCountAndReadingTime(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount("one  two\nthree"))

	assert.Equal(t, 0, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("short text"))

	long := ""
	for i := 0; i < 450; i++ {
		long += "word "
	}
	assert.Equal(t, 3, ReadingTime(long))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a long...", Truncate("a long sentence", 9))
}
