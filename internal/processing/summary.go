package processing

import (
	"math"

	"github.com/spacesedan/blogpulse/internal/models"
)

// Summarize aggregates a batch of sentiment records. Means are computed
// over successfully scored records only and rounded to 3 decimals; they are
// zero when nothing scored.
func Summarize(records []models.SentimentRecord) models.SentimentSummary {
	summary := models.SentimentSummary{Total: len(records)}

	var polaritySum, subjectivitySum float64
	var scored int
	for _, r := range records {
		switch r.Label {
		case models.LabelPositive:
			summary.Positive++
		case models.LabelNegative:
			summary.Negative++
		case models.LabelNeutral:
			summary.Neutral++
		case models.LabelFailed:
			summary.Failed++
		}
		if r.Polarity != nil {
			polaritySum += *r.Polarity
			scored++
		}
		if r.Subjectivity != nil {
			subjectivitySum += *r.Subjectivity
		}
	}

	if scored > 0 {
		summary.MeanPolarity = round3(polaritySum / float64(scored))
		summary.MeanSubjectivity = round3(subjectivitySum / float64(scored))
	}

	return summary
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
