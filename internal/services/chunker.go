package services

import (
	"strings"
	"unicode/utf8"
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText groups whole sentences into chunks of at most maxChunkSize runes.
// Each chunk after the first repeats trailing sentences of the previous one
// until at least overlap runes are shared. A single sentence longer than
// maxChunkSize becomes its own chunk.
func (tc *textChunker) ChunkText(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChunkSize {
		overlap = maxChunkSize / 4
	}

	sentences := splitIntoSentences(text)

	var chunks []string
	var current []string
	currentLen := 0

	for _, sentence := range sentences {
		n := utf8.RuneCountInString(sentence)

		if currentLen > 0 && currentLen+1+n > maxChunkSize {
			chunks = append(chunks, strings.Join(current, " "))
			current, currentLen = overlapTail(current, overlap)
			if currentLen > 0 && currentLen+1+n > maxChunkSize {
				current, currentLen = nil, 0
			}
		}

		if currentLen > 0 {
			currentLen++
		}
		current = append(current, sentence)
		currentLen += n
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}

// overlapTail returns the shortest suffix of sentences covering overlap runes.
func overlapTail(sentences []string, overlap int) ([]string, int) {
	if overlap == 0 {
		return nil, 0
	}

	length := 0
	start := len(sentences)
	for start > 0 && length < overlap {
		start--
		if length > 0 {
			length++
		}
		length += utf8.RuneCountInString(sentences[start])
	}

	tail := make([]string, len(sentences)-start)
	copy(tail, sentences[start:])
	return tail, length
}

// splitIntoSentences splits on terminal punctuation, keeping it attached.
func splitIntoSentences(text string) []string {
	var result []string
	var b strings.Builder

	flush := func() {
		s := strings.Join(strings.Fields(b.String()), " ")
		if s != "" {
			result = append(result, s)
		}
		b.Reset()
	}

	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			flush()
		}
	}
	flush()

	return result
}
