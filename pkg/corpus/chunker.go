package corpus

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultChunkTokens is the per-chunk token budget used at ingestion time.
const DefaultChunkTokens = 1000

var sentenceBoundary = regexp.MustCompile(`([.!?])\s+`)

// SplitSentences breaks normalized text on sentence-ending punctuation
// followed by whitespace. Good enough for the pt-BR corpus; abbreviations
// over-split occasionally, which only shortens chunks.
func SplitSentences(text string) []string {
	marked := sentenceBoundary.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// ChunkText normalizes the text and greedily packs whole sentences into
// chunks of at most maxTokens. A single sentence over the budget is split on
// character boundaries with a small overlap rather than dropped.
func ChunkText(text string, maxTokens int) []string {
	if maxTokens <= 0 {
		maxTokens = DefaultChunkTokens
	}

	var chunks []string
	var current string
	for _, sentence := range SplitSentences(NormalizeText(text)) {
		if EstimateTokens(sentence) > maxTokens {
			if current != "" {
				chunks = append(chunks, current)
				current = ""
			}
			chunks = append(chunks, splitOversize(sentence, maxTokens)...)
			continue
		}

		candidate := sentence
		if current != "" {
			candidate = current + " " + sentence
		}
		if EstimateTokens(candidate) <= maxTokens {
			current = candidate
		} else {
			chunks = append(chunks, current)
			current = sentence
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

// EstimateTokens approximates the cl100k token count of text. The model
// averages about four characters per token on this corpus; exact counts only
// matter near the budget edge, where being slightly conservative is fine.
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return n/4 + 1
}

// splitOversize slices one too-long sentence into fixed-size character
// windows with a small overlap to preserve context at the seams.
func splitOversize(sentence string, maxTokens int) []string {
	chunkSize := maxTokens * 4
	overlap := chunkSize / 10
	step := chunkSize - overlap

	runes := []rune(sentence)
	var chunks []string
	for i := 0; i < len(runes); i += step {
		end := i + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, strings.TrimSpace(string(runes[i:end])))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
