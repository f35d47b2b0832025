package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

const defaultBaseURL = "https://newsapi.org/v2"

// Client fetches articles from NewsAPI.
type Client struct {
	apiKey  string
	country string
	baseURL string
	client  *http.Client
}

// NewClient creates a NewsAPI client reading the key from the environment.
// An empty baseURL uses the public NewsAPI endpoint.
func NewClient(apiKeyEnv, country, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  os.Getenv(apiKeyEnv),
		country: country,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// IsConfigured returns whether the API key is available.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

type apiArticle struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		ID   *string `json:"id"`
		Name string  `json:"name"`
	} `json:"source"`
}

type apiResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []apiArticle `json:"articles"`
	Message      string       `json:"message"`
}

// TopHeadlines fetches headlines for a category. The "home" category fetches
// headlines across all categories. Returns the mapped articles and the
// upstream total result count.
func (c *Client) TopHeadlines(ctx context.Context, category string, page, pageSize int) ([]Article, int, error) {
	params := url.Values{
		"country":  {c.country},
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
	}
	if category != "" && category != "home" {
		params.Set("category", category)
	}
	result, err := c.get(ctx, "/top-headlines", params)
	if err != nil {
		return nil, 0, err
	}
	return mapArticles(result.Articles, category), result.TotalResults, nil
}

// Everything searches all indexed articles for a query, sorted by relevancy.
func (c *Client) Everything(ctx context.Context, query string, page, pageSize int) ([]Article, int, error) {
	params := url.Values{
		"q":        {query},
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
		"sortBy":   {"relevancy"},
	}
	result, err := c.get(ctx, "/everything", params)
	if err != nil {
		return nil, 0, err
	}
	return mapArticles(result.Articles, "home"), result.TotalResults, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*apiResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("news API key not configured")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API returned %d", resp.StatusCode)
	}

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if result.Status != "ok" {
		return nil, fmt.Errorf("news API status %q: %s", result.Status, result.Message)
	}
	return &result, nil
}

func mapArticles(raw []apiArticle, category string) []Article {
	var articles []Article
	for _, a := range raw {
		if a.URL == "" || a.Title == "" {
			continue
		}
		if a.Title == "[Removed]" || a.URL == "https://removed.com" {
			continue
		}
		articles = append(articles, Article{
			ID:                   EncodeID(a.URL),
			Title:                a.Title,
			Description:          deriveDescription(a.Description, a.Content, a.Title),
			Content:              a.Content,
			URL:                  a.URL,
			Image:                a.URLToImage,
			PublishedAt:          a.PublishedAt,
			Source:               Source{ID: a.Source.ID, Name: a.Source.Name},
			Category:             category,
			EstimatedReadingTime: EstimateReadingTime(a.Content),
		})
	}
	return articles
}
