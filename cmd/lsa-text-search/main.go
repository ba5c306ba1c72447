package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"lsa-text-search/internal/analyzer"
	"lsa-text-search/internal/chunker"
	"lsa-text-search/internal/config"
	"lsa-text-search/internal/domain"
	"lsa-text-search/internal/embedding"
	"lsa-text-search/internal/lsa"
	"lsa-text-search/internal/service"
	"lsa-text-search/internal/summarizer"
	"lsa-text-search/internal/tui"
	"lsa-text-search/internal/vectorstore"
	"lsa-text-search/internal/vectorstore/memory"
	"lsa-text-search/internal/vectorstore/qdrant"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var rank int
	var topK int
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/lsa-text-search/config.yaml if not provided)")
	flag.IntVar(&rank, "rank", 0, "Concept-space rank k (overrides config; 0 = untruncated)")
	flag.IntVar(&topK, "topk", 10, "Number of results per query")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: lsa-text-search [--config=config.yaml] [--rank=k] file1.txt [file2.txt ...]")
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if lvl, perr := logrus.ParseLevel(cfg.LogLevel); perr == nil {
		log.SetLevel(lvl)
	}
	if rank > 0 {
		cfg.LSA.Rank = rank
	}

	// Assemble components
	an := analyzer.New(analyzer.Config{
		Stopwords:   cfg.Analyzer.Stopwords,
		Stems:       cfg.Analyzer.Stems,
		MinTokenLen: cfg.Analyzer.MinTokenLen,
	})

	var weighting lsa.Weighting
	switch cfg.LSA.Weighting {
	case "count", "":
		weighting = lsa.WeightCount
	case "tfidf":
		weighting = lsa.WeightTFIDF
	default:
		log.Fatalf("unknown weighting: %s", cfg.LSA.Weighting)
	}
	emb := embedding.NewLSAEmbedder(an, lsa.Options{Rank: cfg.LSA.Rank, Weighting: weighting})

	var ch domain.Chunker
	switch cfg.Chunker.Type {
	case "sentence", "":
		ch = chunker.NewSentenceChunker(cfg.Chunker.SentencesPerChunk, cfg.Chunker.OverlapSentences)
	default:
		log.Fatalf("unknown chunker: %s", cfg.Chunker.Type)
	}

	var st vectorstore.Storage
	switch cfg.VectorStore.Type {
	case "memory", "":
		st = memory.NewStorage()
	case "qdrant":
		if cfg.VectorStore.Qdrant == nil {
			log.Fatalf("qdrant config missing")
		}
		st = qdrant.NewStorage(qdrant.Config{
			URL:        cfg.VectorStore.Qdrant.URL,
			APIKey:     cfg.VectorStore.Qdrant.APIKey,
			Collection: cfg.VectorStore.Qdrant.Collection,
			Timeout:    time.Duration(cfg.VectorStore.Qdrant.TimeoutSecs) * time.Second,
		})
	default:
		log.Fatalf("unknown vector store: %s", cfg.VectorStore.Type)
	}

	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "frequency", "":
		sum = summarizer.NewFrequencySummarizer(an)
	default:
		log.Fatalf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	svc := service.NewSearchService(an, ch, emb, st, sum, cfg.Summarizer.MaxSentences, log)
	summary, err := svc.IngestDocuments(inputs)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	m := tui.New(svc, summary, topK)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
