package insights

import (
	"regexp"
	"strings"
)

var positiveWords = []string{
	"success", "growth", "positive", "improved", "gain", "recovery", "advance",
	"breakthrough", "progress", "achievement", "hope", "benefit", "efficient",
	"opportunity", "innovation", "solution", "resolved", "healthy", "good", "great",
}

var negativeWords = []string{
	"problem", "crisis", "decline", "loss", "negative", "failure", "weak",
	"poor", "disaster", "risk", "threat", "conflict", "danger", "deficit",
	"damage", "worsen", "struggle", "crash", "bad", "terrible",
}

var potentialTopics = []string{
	"technology", "science", "health", "business", "finance", "politics",
	"climate", "education", "environment", "sports", "entertainment",
	"covid", "economy", "market", "medicine", "research", "government",
	"security", "energy", "war", "social media", "artificial intelligence",
	"news", "current events",
}

var wordRe = regexp.MustCompile(`\b[\w']+\b`)

// ruleAnalyze performs word-list sentiment scoring, topic scanning, and a
// first-two-sentences summary. Used when no LLM provider is available.
func ruleAnalyze(content string) Analysis {
	contentLower := strings.ToLower(content)

	positiveCount := countWordMatches(contentLower, positiveWords)
	negativeCount := countWordMatches(contentLower, negativeWords)

	sentiment := "neutral"
	if positiveCount > negativeCount+2 {
		sentiment = "positive"
	} else if negativeCount > positiveCount+2 {
		sentiment = "negative"
	}

	var topics []string
	for _, topic := range potentialTopics {
		if containsPhrase(contentLower, topic) {
			topics = append(topics, topic)
		}
	}
	if len(topics) == 0 {
		topics = []string{"news", "current events"}
	}
	if len(topics) > 5 {
		topics = topics[:5]
	}

	summary := leadingSentences(content, 2)
	if summary == "" {
		summary = "No summary available."
	}

	return Analysis{Sentiment: sentiment, Topics: topics, Summary: summary}
}

func countWordMatches(contentLower string, words []string) int {
	count := 0
	tokens := wordRe.FindAllString(contentLower, -1)
	for _, word := range words {
		for _, token := range tokens {
			if token == word {
				count++
			}
		}
	}
	return count
}

// containsPhrase reports whether the phrase appears on word boundaries.
func containsPhrase(contentLower, phrase string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	return re.MatchString(contentLower)
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)
var sentenceEnd = regexp.MustCompile(`[.!?]$`)

// leadingSentences returns the first n sentences joined with ". " and
// terminated with a period.
func leadingSentences(text string, n int) string {
	var sentences []string
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, strings.TrimSpace(s))
		}
	}
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	summary := strings.Join(sentences, ". ")
	if summary != "" && !sentenceEnd.MatchString(summary) {
		summary += "."
	}
	return summary
}

var claimStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "with": {}, "by": {}, "about": {},
	"as": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "should": {}, "can": {}, "could": {},
}

var punctuation = regexp.MustCompile(`[^\w\s]`)

// claimKeywords extracts up to four meaningful search keywords from a claim.
func claimKeywords(claim string) []string {
	cleaned := punctuation.ReplaceAllString(strings.ToLower(claim), "")
	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 {
			continue
		}
		if _, stop := claimStopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == 4 {
			break
		}
	}
	return keywords
}
