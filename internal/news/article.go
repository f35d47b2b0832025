package news

import (
	"encoding/base64"
	"fmt"
	"math"
	"regexp"
	"strings"

	"concentribe/internal/database"
)

// Categories supported by the news API and the client navigation.
var Categories = []string{"home", "technology", "health", "business", "sports", "entertainment", "science"}

// Source identifies where an article was published.
type Source struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// Article is the wire representation of a news article.
type Article struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Content              string `json:"content"`
	URL                  string `json:"url"`
	Image                string `json:"image"`
	PublishedAt          string `json:"publishedAt"`
	Source               Source `json:"source"`
	Category             string `json:"category"`
	EstimatedReadingTime int    `json:"estimatedReadingTime"`
}

// Bundle is the uniform result shape for article listings.
type Bundle struct {
	Articles []Article `json:"articles"`
	HasMore  bool      `json:"hasMore"`
}

// EncodeID derives a stable article identifier from its URL. The same URL
// always yields the same identifier, which keeps bookmarks consistent
// across fetches.
func EncodeID(articleURL string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(articleURL))
}

// DecodeID recovers the article URL from an identifier.
func DecodeID(id string) (string, error) {
	data, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return "", fmt.Errorf("decoding article id: %w", err)
	}
	return string(data), nil
}

// EstimateReadingTime estimates minutes to read at 200 words per minute.
// Empty text counts as one minute.
func EstimateReadingTime(text string) int {
	if strings.TrimSpace(text) == "" {
		return 1
	}
	words := len(strings.Fields(text))
	minutes := int(math.Ceil(float64(words) / 200))
	if minutes < 1 {
		return 1
	}
	return minutes
}

var truncationMarker = regexp.MustCompile(`\[\+\d+ chars\]$`)

// deriveDescription fills in a description when the upstream API omitted one.
func deriveDescription(description, content, title string) string {
	if len(description) >= 10 {
		return description
	}
	if len(content) > 20 {
		snippet := content
		if len(snippet) > 150 {
			snippet = snippet[:150]
		}
		return truncationMarker.ReplaceAllString(snippet, "") + "..."
	}
	return title + ". Read the full article for more details."
}

// fromCached converts a database row back to the wire shape.
func fromCached(a *database.Article) Article {
	out := Article{
		ID:                   a.APIID,
		Title:                a.Title,
		URL:                  a.URL,
		Category:             a.Category,
		EstimatedReadingTime: a.ReadingTime,
		Source:               Source{ID: a.SourceID, Name: "Unknown"},
	}
	if a.Description != nil {
		out.Description = *a.Description
	}
	if a.Content != nil {
		out.Content = *a.Content
	}
	if a.ImageURL != nil {
		out.Image = *a.ImageURL
	}
	if a.PublishedAt != nil {
		out.PublishedAt = *a.PublishedAt
	}
	if a.SourceName != nil {
		out.Source.Name = *a.SourceName
	}
	return out
}

// toCached converts a wire article to a database row for caching.
func toCached(a Article) *database.Article {
	row := &database.Article{
		APIID:       a.ID,
		Title:       a.Title,
		URL:         a.URL,
		Category:    a.Category,
		ReadingTime: a.EstimatedReadingTime,
		SourceID:    a.Source.ID,
	}
	if a.Description != "" {
		row.Description = &a.Description
	}
	if a.Content != "" {
		row.Content = &a.Content
	}
	if a.Image != "" {
		row.ImageURL = &a.Image
	}
	if a.PublishedAt != "" {
		row.PublishedAt = &a.PublishedAt
	}
	if a.Source.Name != "" {
		row.SourceName = &a.Source.Name
	}
	return row
}
