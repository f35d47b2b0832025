package news

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"concentribe/internal/database"
)

const maxPerFeed = 20

// Feed is a single RSS/Atom feed to collect from.
type Feed struct {
	URL      string
	Name     string
	Category string
}

// Collector pulls articles from configured RSS/Atom feeds into the cache so
// category listings keep working when the news API is unavailable.
type Collector struct {
	db    *database.DB
	feeds []Feed
}

// NewCollector creates a feed collector.
func NewCollector(db *database.DB, feeds []Feed) *Collector {
	return &Collector{db: db, feeds: feeds}
}

// CollectAll parses all configured feeds and caches entries published within
// daysBack days. Returns the number of newly cached articles.
func (c *Collector) CollectAll(daysBack int) int {
	cutoff := time.Now().AddDate(0, 0, -daysBack)
	parser := gofeed.NewParser()
	total := 0

	for _, f := range c.feeds {
		name := f.Name
		if name == "" {
			name = extractSourceName(f.URL)
		}
		category := f.Category
		if category == "" {
			category = "home"
		}

		added, err := c.collectFeed(parser, f.URL, name, category, cutoff)
		if err != nil {
			log.Printf("Failed to parse feed %s: %v", f.URL, err)
			continue
		}
		log.Printf("Cached %d new articles from %s", added, name)
		total += added
	}

	return total
}

func (c *Collector) collectFeed(parser *gofeed.Parser, feedURL, sourceName, category string, cutoff time.Time) (int, error) {
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return 0, err
	}

	added := 0
	seen := 0
	for _, item := range feed.Items {
		if seen >= maxPerFeed {
			break
		}

		article := feedItemToArticle(item, sourceName, category)
		if article == nil {
			continue
		}
		seen++
		if !isWithinWindow(article.PublishedAt, cutoff) {
			continue
		}

		id, err := c.db.InsertArticle(toCached(*article))
		if err != nil {
			log.Printf("Error caching feed article %s: %v", article.URL, err)
			continue
		}
		if id != 0 {
			added++
		}
	}

	return added, nil
}

func feedItemToArticle(item *gofeed.Item, sourceName, category string) *Article {
	itemURL := item.Link
	if itemURL == "" {
		itemURL = item.GUID
	}
	if itemURL == "" {
		return nil
	}

	title := strings.TrimSpace(item.Title)
	if title == "" {
		return nil
	}

	var publishedAt string
	if item.PublishedParsed != nil {
		publishedAt = item.PublishedParsed.UTC().Format(time.RFC3339)
	} else if item.UpdatedParsed != nil {
		publishedAt = item.UpdatedParsed.UTC().Format(time.RFC3339)
	}

	var content string
	if item.Content != "" {
		content = stripHTML(item.Content)
	} else if item.Description != "" {
		content = stripHTML(item.Description)
	}

	var image string
	if item.Image != nil {
		image = item.Image.URL
	}

	return &Article{
		ID:                   EncodeID(itemURL),
		Title:                title,
		Description:          deriveDescription("", content, title),
		Content:              content,
		URL:                  itemURL,
		Image:                image,
		PublishedAt:          publishedAt,
		Source:               Source{Name: sourceName},
		Category:             category,
		EstimatedReadingTime: EstimateReadingTime(content),
	}
}

func isWithinWindow(publishedAt string, cutoff time.Time) bool {
	if publishedAt == "" {
		return true // benefit of the doubt
	}
	pub, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return true
	}
	return !pub.Before(cutoff)
}

func stripHTML(text string) string {
	// Simple HTML tag removal
	var result strings.Builder
	inTag := false
	for _, r := range text {
		if r == '<' {
			inTag = true
			result.WriteRune(' ')
			continue
		}
		if r == '>' {
			inTag = false
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}

	s := result.String()
	// Decode common entities
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#39;", "'")

	// Normalize whitespace
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

func extractSourceName(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil {
		return feedURL
	}
	host := strings.ToLower(u.Hostname())

	for _, prefix := range []string{"www.", "blog.", "blogs.", "rss.", "feeds."} {
		host = strings.TrimPrefix(host, prefix)
	}

	parts := strings.Split(host, ".")
	if len(parts) >= 2 {
		name := parts[len(parts)-2]
		return strings.ToUpper(name[:1]) + name[1:]
	}
	return strings.ToUpper(host[:1]) + host[1:]
}
