package service

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"lsa-text-search/internal/domain"
	"lsa-text-search/internal/lsa"
)

// SearchServiceImpl wires the pipeline together: load files, cut them
// into index units, build the concept-space index, store the document
// vectors, and answer ranked queries. Re-ingesting rebuilds the index
// wholesale and swaps it in; queries always read a complete snapshot.
type SearchServiceImpl struct {
	analyzer            domain.Analyzer
	chunker             domain.Chunker
	embedder            domain.Embedder
	store               domain.VectorStore
	summarizer          domain.Summarizer
	summaryMaxSentences int
	chunks              []domain.Chunk
	log                 *logrus.Logger
}

func NewSearchService(analyzer domain.Analyzer, chunker domain.Chunker, embedder domain.Embedder, store domain.VectorStore, summarizer domain.Summarizer, summaryMaxSentences int, log *logrus.Logger) *SearchServiceImpl {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SearchServiceImpl{
		analyzer:            analyzer,
		chunker:             chunker,
		embedder:            embedder,
		store:               store,
		summarizer:          summarizer,
		summaryMaxSentences: summaryMaxSentences,
		log:                 log,
	}
}

// IngestDocuments loads the given .txt paths (globs allowed), builds
// the index and returns a corpus summary.
func (s *SearchServiceImpl) IngestDocuments(paths []string) (string, error) {
	start := time.Now()
	var documents []domain.Document
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return "", fmt.Errorf("bad glob pattern %q: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return "", fmt.Errorf("read %s: %w", m, err)
			}
			documents = append(documents, domain.Document{ID: hashString(m), Path: m, Content: string(data)})
		}
	}
	if len(documents) == 0 {
		return "", fmt.Errorf("no .txt documents found")
	}

	var allChunks []domain.Chunk
	var allTexts []string
	var corpus strings.Builder
	for _, d := range documents {
		chunks, err := s.chunker.Chunk(d)
		if err != nil {
			return "", err
		}
		for _, ch := range chunks {
			// Position in ingestion order is the matrix column index.
			ch.Index = len(allChunks)
			allChunks = append(allChunks, ch)
			allTexts = append(allTexts, ch.Text)
		}
		corpus.WriteString("\n")
		corpus.WriteString(d.Content)
	}
	if len(allChunks) == 0 {
		return "", fmt.Errorf("documents contain no indexable text")
	}
	// Keep chunks for lexical fallback ranking
	s.chunks = allChunks

	if err := s.embedder.Prepare(allTexts); err != nil {
		return "", err
	}
	if err := s.store.Init(s.embedder.Dimension()); err != nil {
		return "", err
	}
	vectors := make([][]float64, len(allChunks))
	for i := range allChunks {
		vec, err := s.embedder.Embed(allChunks[i].Text)
		if err != nil {
			return "", err
		}
		vectors[i] = vec
	}
	if err := s.store.Clear(); err != nil {
		return "", err
	}
	if err := s.store.Upsert(allChunks, vectors); err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"files":   len(documents),
		"units":   len(allChunks),
		"rank":    s.embedder.Dimension(),
		"elapsed": time.Since(start),
	}).Info("index built")

	summary, err := s.summarizer.Summarize(corpus.String(), s.summaryMaxSentences)
	if err != nil {
		return "", err
	}
	return summary, nil
}

// Query projects the query into concept space and returns the topK
// most similar units. Queries whose projection is the zero vector
// (every term out of vocabulary) fall back to lexical overlap ranking.
func (s *SearchServiceImpl) Query(query string, topK int) ([]domain.SearchResult, error) {
	vec, err := s.embedder.Embed(query)
	if err != nil {
		return nil, err
	}
	zero := true
	for _, v := range vec {
		if v != 0 {
			zero = false
			break
		}
	}
	if zero {
		s.log.WithField("query", query).Debug("zero projection, lexical fallback")
		return s.lexicalSearch(query, topK), nil
	}
	res, err := s.store.Search(vec, topK)
	if err != nil {
		return nil, err
	}
	allZero := true
	for _, r := range res {
		if math.Abs(r.Score) > 1e-9 {
			allZero = false
			break
		}
	}
	if allZero {
		return s.lexicalSearch(query, topK), nil
	}
	return res, nil
}

// Scores returns the cosine similarity of the query against every
// indexed unit, in ingestion order. Unlike Query it never truncates or
// falls back, so degenerate queries yield all-zero scores.
func (s *SearchServiceImpl) Scores(query string) ([]float64, error) {
	ip, ok := s.embedder.(interface{ Index() *lsa.Index })
	if !ok {
		return nil, fmt.Errorf("embedder %q has no concept-space index", s.embedder.Name())
	}
	ix := ip.Index()
	if ix == nil {
		return nil, fmt.Errorf("no index built yet")
	}
	qs := ix.Project(s.analyzer.Normalize(query))
	return ix.Scores(qs), nil
}

func (s *SearchServiceImpl) lexicalSearch(query string, topK int) []domain.SearchResult {
	qset := s.tokenSet(query)
	type pair struct {
		idx   int
		score float64
	}
	scores := make([]pair, len(s.chunks))
	for i, ch := range s.chunks {
		scores[i] = pair{i, s.overlapOchiai(qset, ch.Text)}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if topK <= 0 {
		topK = 5
	}
	if topK > len(scores) {
		topK = len(scores)
	}
	out := make([]domain.SearchResult, 0, topK)
	for i := 0; i < topK; i++ {
		p := scores[i]
		out = append(out, domain.SearchResult{Chunk: s.chunks[p.idx], Score: p.score})
	}
	return out
}

func (s *SearchServiceImpl) tokenSet(text string) map[string]struct{} {
	tokens := s.analyzer.Normalize(text)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

// overlapOchiai scores |A∩B| / sqrt(|A||B|) over distinct tokens.
func (s *SearchServiceImpl) overlapOchiai(qset map[string]struct{}, text string) float64 {
	tset := s.tokenSet(text)
	if len(qset) == 0 || len(tset) == 0 {
		return 0
	}
	inter := 0
	for t := range tset {
		if _, ok := qset[t]; ok {
			inter++
		}
	}
	return float64(inter) / (math.Sqrt(float64(len(qset))) * math.Sqrt(float64(len(tset))))
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
