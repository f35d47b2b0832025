package insights

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"concentribe/internal/llm"
	"concentribe/internal/news"
)

const insightPrompt = `You are an expert news analyst. Based on the article information provided, generate a concise insight that explains the significance of this news item. Return a JSON response with the following fields:
1. insight: A brief, insightful analysis of the news item (max 2 sentences)
2. sentiment: The sentiment of the analysis (must be exactly one of these values: 'positive', 'negative', or 'neutral')
3. confidence: A confidence score between 60 and 95

Article information:
`

const analyzePrompt = `You are an expert news analyst. Analyze the provided article and return a JSON response with the following fields:
1. sentiment: The overall sentiment of the article (must be exactly one of these values: 'positive', 'negative', or 'neutral')
2. topics: An array of 3-5 relevant topics mentioned in the article
3. summary: A concise 2-3 sentence summary of the key points of the article

Article:
`

const summarizePrompt = `You are a summarization expert. Provide a concise summary of the following text in about 2-3 sentences. Focus on the main points only. Return just the summary text with no additional formatting or explanation.

`

const factCheckPrompt = `You are a fact-checking expert. Analyze the provided claim and determine if it appears reliable based on your knowledge. Return a JSON response with the following fields:
1. isReliable: Boolean indicating if the claim appears reliable
2. confidence: A confidence score between 30 and 90
3. explanation: A brief explanation for your assessment (2-3 sentences)

Claim:
`

var errNotJSON = errors.New("response was not valid JSON")

// Generator produces insights, analyses, summaries, and fact checks. It
// prefers the LLM provider when one is configured and degrades to
// pre-generated or rule-based content otherwise.
type Generator struct {
	provider  llm.Provider
	news      *news.Service
	maxTokens int
}

// NewGenerator creates an insight generator. The provider may be nil.
func NewGenerator(provider llm.Provider, newsSvc *news.Service, maxTokens int) *Generator {
	if maxTokens <= 0 {
		maxTokens = 512
	}
	return &Generator{provider: provider, news: newsSvc, maxTokens: maxTokens}
}

func (g *Generator) available() bool {
	return g.provider != nil && g.provider.IsConfigured()
}

// HomeInsights returns insights for the homepage: live LLM insights over the
// top article per category when possible, otherwise a selection from the
// pre-generated catalog.
func (g *Generator) HomeInsights(ctx context.Context) []Insight {
	if g.available() {
		if live := g.liveHomeInsights(ctx); len(live) > 0 {
			return live
		}
		log.Println("Live insight generation produced nothing, using catalog")
	}
	return HomeSelection()
}

// liveHomeInsights fans out over the categories, fetching the top article of
// each and asking the LLM for an insight about it.
func (g *Generator) liveHomeInsights(ctx context.Context) []Insight {
	results := make([]*Insight, len(Categories))

	eg, ctx := errgroup.WithContext(ctx)
	for i, category := range Categories {
		eg.Go(func() error {
			bundle := g.news.ByCategory(ctx, category, 1, 1)
			if len(bundle.Articles) == 0 {
				return nil
			}
			insight, err := g.generateInsight(ctx, &bundle.Articles[0])
			if err != nil {
				log.Printf("Error generating insight for %s: %v", category, err)
				return nil
			}
			results[i] = insight
			return nil
		})
	}
	eg.Wait()

	var insights []Insight
	for _, r := range results {
		if r == nil {
			continue
		}
		r.ID = strconv.Itoa(len(insights) + 1)
		insights = append(insights, *r)
	}
	return insights
}

// LiveArticleInsights asks the LLM for an insight about a single article.
// Returns nil when no provider is available or generation fails; the caller
// falls back to the catalog.
func (g *Generator) LiveArticleInsights(ctx context.Context, article *news.Article) []Insight {
	if !g.available() {
		return nil
	}
	insight, err := g.generateInsight(ctx, article)
	if err != nil {
		log.Printf("Error generating live article insight: %v", err)
		return nil
	}
	insight.ID = "1"
	return []Insight{*insight}
}

func (g *Generator) generateInsight(ctx context.Context, article *news.Article) (*Insight, error) {
	info, err := json.Marshal(map[string]string{
		"title":       article.Title,
		"description": article.Description,
		"category":    article.Category,
		"source":      article.Source.Name,
	})
	if err != nil {
		return nil, err
	}

	raw, err := g.provider.Generate(ctx, insightPrompt+string(info), g.maxTokens)
	if err != nil {
		return nil, err
	}
	result := llm.ParseJSONResponse(raw)
	if result == nil {
		return nil, errNotJSON
	}

	return &Insight{
		Type:            TypeTrend,
		Title:           trendTitle(article.Category, article.Title),
		Content:         llm.GetString(result, "insight", "No insight available"),
		Sentiment:       llm.GetString(result, "sentiment", "neutral"),
		Confidence:      llm.GetInt(result, "confidence", 70),
		Category:        article.Category,
		RelatedArticles: []string{article.ID},
	}, nil
}

// trendTitle builds "{Category} Trend: {first six words of title}...".
func trendTitle(category, articleTitle string) string {
	words := strings.Fields(articleTitle)
	if len(words) > 6 {
		words = words[:6]
	}
	c := category
	if c != "" {
		c = strings.ToUpper(c[:1]) + c[1:]
	}
	return c + " Trend: " + strings.Join(words, " ") + "..."
}

// Analyze determines sentiment, topics, and a summary for article content.
func (g *Generator) Analyze(ctx context.Context, content string) Analysis {
	if g.available() {
		raw, err := g.provider.Generate(ctx, analyzePrompt+content, g.maxTokens)
		if err == nil {
			if result := llm.ParseJSONResponse(raw); result != nil {
				topics := llm.GetStringSlice(result, "topics")
				if topics == nil {
					topics = []string{}
				}
				return Analysis{
					Sentiment: llm.GetString(result, "sentiment", "neutral"),
					Topics:    topics,
					Summary:   llm.GetString(result, "summary", "No summary available."),
				}
			}
		} else {
			log.Printf("LLM analysis failed, using rule-based fallback: %v", err)
		}
	}
	return ruleAnalyze(content)
}

// Summarize produces a short summary of the text, at most maxLength runes
// on the fallback path.
func (g *Generator) Summarize(ctx context.Context, text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = 200
	}
	if g.available() {
		raw, err := g.provider.Generate(ctx, summarizePrompt+text, 150)
		if err == nil && strings.TrimSpace(raw) != "" {
			return strings.TrimSpace(raw)
		}
		if err != nil {
			log.Printf("LLM summarization failed, using sentence fallback: %v", err)
		}
	}

	summary := leadingSentences(text, 2)
	if len(summary) > maxLength {
		summary = summary[:maxLength] + "..."
	}
	if summary == "" {
		return "Unable to generate a summary."
	}
	return summary
}

// FactCheck assesses a claim. The LLM path answers from model knowledge; the
// fallback searches news coverage and scores reliability by source diversity.
func (g *Generator) FactCheck(ctx context.Context, claim string) FactCheckResult {
	if g.available() {
		raw, err := g.provider.Generate(ctx, factCheckPrompt+claim, g.maxTokens)
		if err == nil {
			if result := llm.ParseJSONResponse(raw); result != nil {
				return FactCheckResult{
					IsReliable:  llm.GetBool(result, "isReliable", false),
					Confidence:  llm.GetInt(result, "confidence", 50),
					Explanation: llm.GetString(result, "explanation", "Unable to verify this claim."),
				}
			}
		} else {
			log.Printf("LLM fact check failed, using news search fallback: %v", err)
		}
	}
	return g.searchFactCheck(ctx, claim)
}

// searchFactCheck verifies a claim by searching for related coverage and
// counting distinct sources.
func (g *Generator) searchFactCheck(ctx context.Context, claim string) FactCheckResult {
	keywords := claimKeywords(claim)
	if len(keywords) == 0 {
		return FactCheckResult{
			IsReliable:  false,
			Confidence:  40,
			Explanation: "Unable to extract meaningful keywords from the claim to verify it.",
		}
	}

	query := strings.Join(keywords, " OR ")
	log.Printf("Fact checking claim by searching for: %s", query)

	bundle := g.news.Search(ctx, query, 1, 5)
	if len(bundle.Articles) == 0 {
		return FactCheckResult{
			IsReliable:  false,
			Confidence:  30,
			Explanation: "No supporting news articles found to verify this claim.",
		}
	}

	var sources []string
	seen := make(map[string]struct{})
	for _, a := range bundle.Articles {
		name := a.Source.Name
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		sources = append(sources, name)
	}

	confidence := 50 + len(sources)*10
	if confidence > 90 {
		confidence = 90
	}

	var explanation string
	switch {
	case len(sources) > 2:
		listed := strings.Join(sources[:3], ", ")
		suffix := ""
		if len(sources) > 3 {
			suffix = "..."
		}
		explanation = "Multiple reliable sources (" + listed + suffix + ") have published articles related to this topic, suggesting the claim has factual basis."
	case len(sources) > 0:
		explanation = "Found limited coverage from " + strings.Join(sources, ", ") + " about this topic. The claim may have some factual elements, but should be verified with additional sources."
	default:
		explanation = "Limited information available to verify this claim. Exercise caution."
	}

	return FactCheckResult{
		IsReliable:  len(sources) > 1,
		Confidence:  confidence,
		Explanation: explanation,
	}
}
