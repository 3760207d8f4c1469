package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitIntoSentences(t *testing.T) {
	got := splitIntoSentences("Hello there.  I build APIs!\nDo you?  trailing")
	assert.Equal(t, []string{"Hello there.", "I build APIs!", "Do you?", "trailing"}, got)
}

func TestChunkTextShortText(t *testing.T) {
	chunks := NewTextChunker().ChunkText("One. Two.", 100, 10)
	assert.Equal(t, []string{"One. Two."}, chunks)
}

func TestChunkTextEmpty(t *testing.T) {
	assert.Empty(t, NewTextChunker().ChunkText("   ", 100, 10))
}

func TestChunkTextRespectsSizeAndOverlap(t *testing.T) {
	text := strings.Repeat("This is a sentence about Go. ", 20)

	chunks := NewTextChunker().ChunkText(text, 100, 30)
	require.Greater(t, len(chunks), 1)

	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 100)
	}

	for i := 1; i < len(chunks); i++ {
		assert.True(t, strings.HasPrefix(chunks[i], "This is a sentence about Go."), "chunk %d should start with the overlapping sentence", i)
	}
}

func TestChunkTextLongSentence(t *testing.T) {
	long := strings.Repeat("a", 50) + "."

	chunks := NewTextChunker().ChunkText("Short. "+long+" End.", 20, 0)
	assert.Equal(t, []string{"Short.", long, "End."}, chunks)
}
