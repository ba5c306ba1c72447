package analyzer

import (
	"regexp"
	"strings"
)

// SimpleAnalyzer normalizes raw text into tokens: unicode-word
// tokenization, lowercasing, stop-word removal and dictionary stemming.
// The stop-word set and stem map come from configuration so the same
// tables are applied to documents and queries.
type SimpleAnalyzer struct {
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
	stems        map[string]string
	minTokenLen  int
}

// Config carries the normalization tables.
type Config struct {
	Stopwords   []string
	Stems       map[string]string
	MinTokenLen int
}

// New creates an analyzer. Empty config fields fall back to the
// built-in English defaults.
func New(cfg Config) *SimpleAnalyzer {
	stop := make(map[string]struct{}, len(cfg.Stopwords))
	for _, w := range cfg.Stopwords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	if len(stop) == 0 {
		stop = defaultStopwords()
	}
	stems := make(map[string]string, len(cfg.Stems))
	for from, to := range cfg.Stems {
		stems[strings.ToLower(from)] = strings.ToLower(to)
	}
	minLen := cfg.MinTokenLen
	if minLen <= 0 {
		minLen = 1
	}
	return &SimpleAnalyzer{
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords:    stop,
		stems:        stems,
		minTokenLen:  minLen,
	}
}

// Normalize returns the normalized token sequence for text. Tokens are
// emitted in document order; an empty slice means nothing survived
// normalization.
func (a *SimpleAnalyzer) Normalize(text string) []string {
	lower := strings.ToLower(text)
	raw := a.tokenPattern.FindAllString(lower, -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len([]rune(tok)) < a.minTokenLen {
			continue
		}
		if _, isStop := a.stopwords[tok]; isStop {
			continue
		}
		if stem, ok := a.stems[tok]; ok {
			tok = stem
		}
		out = append(out, tok)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
