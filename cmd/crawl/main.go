package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/blogpulse/config"
	"github.com/spacesedan/blogpulse/internal/logging"
	"github.com/spacesedan/blogpulse/internal/models"
	"github.com/spacesedan/blogpulse/internal/processing"
	"github.com/spacesedan/blogpulse/internal/search"
)

type report struct {
	Keyword string                   `json:"keyword"`
	Records []models.SentimentRecord `json:"records"`
	Summary models.SentimentSummary  `json:"summary"`
}

func main() {
	keyword := flag.String("keyword", "", "keyword to search blog posts for (required)")
	maxResults := flag.Int("max", search.DefaultMaxResults, "maximum number of result URLs")
	asJSON := flag.Bool("json", false, "emit the report as JSON")
	flag.Parse()

	config.LoadEnv()
	logging.InitLogger()

	if *keyword == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	records := processing.NewPipeline().CrawlAndScore(ctx, *keyword, *maxResults)
	summary := processing.Summarize(records)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report{Keyword: *keyword, Records: records, Summary: summary}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	for _, r := range records {
		if r.Polarity == nil {
			fmt.Printf("%-8s  %s\n", r.Label, r.URL)
			continue
		}
		fmt.Printf("%-8s  polarity=%+.3f  subjectivity=%.3f  %s\n", r.Label, *r.Polarity, *r.Subjectivity, r.URL)
	}
	fmt.Printf("\n%d records: %d positive, %d negative, %d neutral, %d failed (mean polarity %+.3f)\n",
		summary.Total, summary.Positive, summary.Negative, summary.Neutral, summary.Failed, summary.MeanPolarity)
}
