package processing

import (
	"testing"

	"github.com/spacesedan/blogpulse/internal/models"
)

func f(v float64) *float64 { return &v }

func TestSummarize(t *testing.T) {
	records := []models.SentimentRecord{
		{URL: "a", Polarity: f(0.5), Subjectivity: f(0.4), Label: models.LabelPositive},
		{URL: "b", Polarity: f(-0.3), Subjectivity: f(0.2), Label: models.LabelNegative},
		{URL: "c", Polarity: f(0.1), Subjectivity: f(0.3), Label: models.LabelNeutral},
		{URL: "d", Label: models.LabelFailed},
	}

	s := Summarize(records)
	if s.Total != 4 || s.Positive != 1 || s.Negative != 1 || s.Neutral != 1 || s.Failed != 1 {
		t.Errorf("counts wrong: %+v", s)
	}
	if s.MeanPolarity != 0.1 {
		t.Errorf("MeanPolarity=%v, want 0.1", s.MeanPolarity)
	}
	if s.MeanSubjectivity != 0.3 {
		t.Errorf("MeanSubjectivity=%v, want 0.3", s.MeanSubjectivity)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.MeanPolarity != 0 || s.MeanSubjectivity != 0 {
		t.Errorf("unexpected summary for no records: %+v", s)
	}
}

func TestSummarizeAllFailed(t *testing.T) {
	s := Summarize([]models.SentimentRecord{
		{URL: "a", Label: models.LabelFailed},
		{URL: "b", Label: models.LabelFailed},
	})
	if s.Failed != 2 || s.MeanPolarity != 0 {
		t.Errorf("unexpected summary: %+v", s)
	}
}
