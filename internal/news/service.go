package news

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"concentribe/internal/database"
)

// Service layers the article cache over the live NewsAPI client. Listing
// operations always return a valid bundle: upstream failures are logged and
// absorbed by falling back to cached articles, then to an empty result.
type Service struct {
	db       *database.DB
	client   *Client
	pageSize int
}

// NewService creates a news service.
func NewService(db *database.DB, client *Client, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Service{db: db, client: client, pageSize: pageSize}
}

// DefaultPageSize returns the configured page size.
func (s *Service) DefaultPageSize() int {
	return s.pageSize
}

// Featured returns the top headlines across all categories.
func (s *Service) Featured(ctx context.Context) *Bundle {
	return s.ByCategory(ctx, "home", 1, 5)
}

// ByCategory returns articles for a category with a has-more flag. Tries the
// live API first, then the cache, then returns an empty bundle.
func (s *Service) ByCategory(ctx context.Context, category string, page, pageSize int) *Bundle {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	articles, total, err := s.client.TopHeadlines(ctx, category, page, pageSize)
	if err == nil && len(articles) > 0 {
		s.cache(articles)
		return &Bundle{Articles: articles, HasMore: total > page*pageSize}
	}
	if err != nil {
		log.Printf("News API fetch failed for %s: %v", category, err)
	} else {
		log.Printf("News API returned no articles for %s, trying cache", category)
	}

	cached, dbErr := s.db.GetArticlesByCategory(category, pageSize)
	if dbErr != nil {
		log.Printf("Cache lookup failed for %s: %v", category, dbErr)
	}
	if len(cached) > 0 {
		log.Printf("Using %d cached articles for %s", len(cached), category)
		out := make([]Article, len(cached))
		for i := range cached {
			out[i] = fromCached(&cached[i])
		}
		// Pagination is disabled for cached results.
		return &Bundle{Articles: out, HasMore: false}
	}

	return &Bundle{Articles: []Article{}, HasMore: false}
}

// Search queries all indexed articles. Search results are not cached, so
// failures yield an empty bundle rather than a fallback.
func (s *Service) Search(ctx context.Context, query string, page, pageSize int) *Bundle {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	articles, total, err := s.client.Everything(ctx, query, page, pageSize)
	if err != nil || len(articles) == 0 {
		if err != nil {
			log.Printf("News search failed for %q: %v", query, err)
		}
		return &Bundle{Articles: []Article{}, HasMore: false}
	}
	s.cache(articles)
	return &Bundle{Articles: articles, HasMore: total > page*pageSize}
}

// ArticleByID resolves an article identifier. Resolution order: exact URL
// search against the live API, the local cache, a title search derived from
// the URL path, and finally a synthesized placeholder built from the URL
// alone. Returns nil only when the identifier cannot be decoded and is not
// cached.
func (s *Service) ArticleByID(ctx context.Context, id string) *Article {
	articleURL, err := DecodeID(id)
	if err != nil {
		log.Printf("Error decoding article id %q: %v", id, err)
		articleURL = ""
	}

	if articleURL != "" {
		if found, _, err := s.client.Everything(ctx, articleURL, 1, 1); err == nil && len(found) > 0 {
			a := found[0]
			a.ID = id
			s.cache([]Article{a})
			return &a
		}
	}

	if cached, err := s.db.GetArticleByAPIID(id); err == nil && cached != nil {
		a := fromCached(cached)
		return &a
	}

	if articleURL == "" {
		return nil
	}

	parsed, err := url.Parse(articleURL)
	if err != nil {
		return nil
	}
	domain := parsed.Hostname()
	titlePart := titleFromPath(parsed.Path)

	if len(titlePart) > 5 {
		if found, _, err := s.client.Everything(ctx, titlePart, 1, 3); err == nil && len(found) > 0 {
			a := found[0]
			a.ID = id
			s.cache([]Article{a})
			return &a
		}
	}

	return synthesizeArticle(id, articleURL, domain, titlePart)
}

// cache stores fetched articles for offline fallback. Duplicates are ignored.
func (s *Service) cache(articles []Article) {
	for i := range articles {
		if _, err := s.db.InsertArticle(toCached(articles[i])); err != nil {
			log.Printf("Error caching article %s: %v", articles[i].ID, err)
		}
	}
}

// EnsureCached returns the cache row for an article, inserting it first when
// the article has never been stored.
func (s *Service) EnsureCached(a *Article) (*database.Article, error) {
	if row, err := s.db.GetArticleByAPIID(a.ID); err == nil && row != nil {
		return row, nil
	}
	if _, err := s.db.InsertArticle(toCached(*a)); err != nil {
		return nil, err
	}
	return s.db.GetArticleByAPIID(a.ID)
}

// titleFromPath extracts a human-readable title guess from a URL path.
func titleFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	last := parts[len(parts)-1]
	return strings.ReplaceAll(last, "-", " ")
}

// guessCategory maps a hostname to a likely category.
func guessCategory(domain string) string {
	switch {
	case strings.Contains(domain, "tech") || strings.Contains(domain, "wired"):
		return "technology"
	case strings.Contains(domain, "health"):
		return "health"
	case strings.Contains(domain, "sport"):
		return "sports"
	case strings.Contains(domain, "business") || strings.Contains(domain, "finance"):
		return "business"
	}
	return "home"
}

// synthesizeArticle builds a placeholder when neither the API nor the cache
// knows the article. The reader can still follow the original URL.
func synthesizeArticle(id, articleURL, domain, titlePart string) *Article {
	title := "Article"
	if titlePart != "" {
		title = strings.ToUpper(titlePart[:1]) + titlePart[1:]
	}
	description := title + ". This appears to be an article from " + domain + ". " +
		"The article is about " + titlePart + ". " +
		`Click "Read full article" to see the original content.`

	return &Article{
		ID:                   id,
		Title:                title,
		Description:          description,
		Content:              `This article content is not available. Click "Read full article" to view the original article.`,
		URL:                  articleURL,
		PublishedAt:          time.Now().UTC().Format(time.RFC3339),
		Source:               Source{Name: domain},
		Category:             guessCategory(domain),
		EstimatedReadingTime: 1,
	}
}
