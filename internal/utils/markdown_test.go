package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Heading\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1")
	assert.Contains(t, string(html), "<strong>bold</strong>")
}

func TestGenerateExcerptStripsFormatting(t *testing.T) {
	excerpt := GenerateExcerpt("# Title\n\nSome *emphasis* and a [link](https://example.com).", 200)
	assert.Equal(t, "Title Some emphasis and a .", excerpt)
}

func TestGenerateExcerptTruncates(t *testing.T) {
	excerpt := GenerateExcerpt(strings.Repeat("word ", 100), 20)
	assert.Len(t, []rune(excerpt), 23) // 20 runes + "..."
	assert.True(t, strings.HasSuffix(excerpt, "..."))
}

func TestEstimateReadTime(t *testing.T) {
	assert.Equal(t, "1 min read", EstimateReadTime("just a few words"))
	assert.Equal(t, "2 min read", EstimateReadTime(strings.Repeat("word ", 350)))
}
