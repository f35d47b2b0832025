package insights

// Insight types.
const (
	TypeTrend     = "trend"
	TypeAnalysis  = "analysis"
	TypeFactCheck = "factCheck"
)

// Insight is an AI-generated or pre-generated news insight.
type Insight struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Sentiment       string   `json:"sentiment"`
	Confidence      int      `json:"confidence"`
	Category        string   `json:"category"`
	RelatedArticles []string `json:"relatedArticles"`
}

// Analysis is the result of analyzing article content.
type Analysis struct {
	Sentiment string   `json:"sentiment"`
	Topics    []string `json:"topics"`
	Summary   string   `json:"summary"`
}

// FactCheckResult is the result of checking a claim.
type FactCheckResult struct {
	IsReliable  bool   `json:"isReliable"`
	Confidence  int    `json:"confidence"`
	Explanation string `json:"explanation"`
}
