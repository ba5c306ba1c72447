package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"lsa-text-search/internal/domain"
)

// FrequencySummarizer ranks sentences by normalized token frequency.
// It shares the pipeline's analyzer so the same stop words and stems
// apply to summaries as to the index.
type FrequencySummarizer struct {
	analyzer domain.Analyzer
	splitter *regexp.Regexp
}

// NewFrequencySummarizer creates a frequency-based sentence ranker.
func NewFrequencySummarizer(analyzer domain.Analyzer) *FrequencySummarizer {
	return &FrequencySummarizer{
		analyzer: analyzer,
		splitter: regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`),
	}
}

// Summarize returns up to maxSentences sentences, chosen by frequency
// score and kept in original order.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = 5
	}
	sentences := s.splitter.FindAllString(text, -1)
	if len(sentences) == 0 {
		return strings.TrimSpace(text), nil
	}

	freq := map[string]float64{}
	for _, sent := range sentences {
		for _, tok := range s.analyzer.Normalize(sent) {
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}

	type pair struct {
		idx   int
		score float64
	}
	scores := make([]pair, len(sentences))
	for i, sent := range sentences {
		toks := s.analyzer.Normalize(sent)
		sscore := 0.0
		for _, tok := range toks {
			sscore += freq[tok]
		}
		// Normalize by sentence length to avoid bias toward long sentences
		if l := float64(len(toks)); l > 0 {
			sscore /= math.Sqrt(l)
		}
		scores[i] = pair{i, sscore}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if maxSentences > len(scores) {
		maxSentences = len(scores)
	}
	// Keep original order among selected
	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)
	out := make([]string, 0, len(selected))
	for _, idx := range selected {
		out = append(out, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(out, " "), nil
}
