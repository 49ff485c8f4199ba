package models

// Sentiment labels assigned to a scored page. Failed marks pages whose
// content could not be fetched or yielded no text.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
	LabelFailed   = "failed"
)

// SentimentRecord is the per-URL outcome of a scoring pass. Polarity and
// Subjectivity are nil when the fetch failed (Label == "failed").
type SentimentRecord struct {
	URL          string   `json:"url"`
	Excerpt      string   `json:"excerpt"`
	Polarity     *float64 `json:"polarity"`
	Subjectivity *float64 `json:"subjectivity"`
	Label        string   `json:"label"`
}

// SentimentSummary aggregates a batch of records for reporting.
type SentimentSummary struct {
	Total            int     `json:"total"`
	Positive         int     `json:"positive"`
	Negative         int     `json:"negative"`
	Neutral          int     `json:"neutral"`
	Failed           int     `json:"failed"`
	MeanPolarity     float64 `json:"mean_polarity"`
	MeanSubjectivity float64 `json:"mean_subjectivity"`
}
