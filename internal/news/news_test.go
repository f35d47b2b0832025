package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"concentribe/internal/database"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestClient(baseURL string) *Client {
	return &Client{
		apiKey:  "test-key",
		country: "us",
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func fakeNewsAPI(t *testing.T, totalResults int, articles []apiArticle) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(apiResponse{
			Status:       "ok",
			TotalResults: totalResults,
			Articles:     articles,
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func failingNewsAPI(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	return server
}

func sampleAPIArticle(articleURL, title string) apiArticle {
	a := apiArticle{
		URL:         articleURL,
		Title:       title,
		Description: "A description that is long enough to keep.",
		Content:     "Some article content for the test.",
		PublishedAt: "2026-08-28T10:00:00Z",
	}
	a.Source.Name = "Test Source"
	return a
}

func TestEncodeDecodeID(t *testing.T) {
	url := "https://example.com/news/some-article?x=1"
	id := EncodeID(url)
	if id != EncodeID(url) {
		t.Error("expected deterministic identifier")
	}
	decoded, err := DecodeID(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != url {
		t.Errorf("expected round trip, got %q", decoded)
	}
}

func TestDecodeIDInvalid(t *testing.T) {
	if _, err := DecodeID("!!not base64!!"); err == nil {
		t.Error("expected error for invalid identifier")
	}
}

func TestEstimateReadingTime(t *testing.T) {
	words := strings.TrimSpace(strings.Repeat("word ", 400))
	if got := EstimateReadingTime(words); got != 2 {
		t.Errorf("expected 2 minutes for 400 words, got %d", got)
	}
	if got := EstimateReadingTime(""); got != 1 {
		t.Errorf("expected 1 minute for empty text, got %d", got)
	}
	if got := EstimateReadingTime("short text"); got != 1 {
		t.Errorf("expected minimum 1 minute, got %d", got)
	}
}

func TestDeriveDescription(t *testing.T) {
	if got := deriveDescription("A real description here", "content", "Title"); got != "A real description here" {
		t.Errorf("expected existing description kept, got %q", got)
	}

	content := strings.Repeat("x", 140) + " [+1234 chars]"
	got := deriveDescription("", content, "Title")
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected trailing ellipsis, got %q", got)
	}
	if strings.Contains(got, "chars]") {
		t.Errorf("expected truncation marker stripped, got %q", got)
	}

	if got := deriveDescription("", "", "Big Story"); got != "Big Story. Read the full article for more details." {
		t.Errorf("unexpected title fallback: %q", got)
	}
}

func TestMapArticlesFiltersRemoved(t *testing.T) {
	raw := []apiArticle{
		sampleAPIArticle("https://example.com/a", "Kept"),
		sampleAPIArticle("https://example.com/b", "[Removed]"),
		sampleAPIArticle("", "No URL"),
	}
	mapped := mapArticles(raw, "technology")
	if len(mapped) != 1 {
		t.Fatalf("expected 1 article, got %d", len(mapped))
	}
	if mapped[0].Title != "Kept" {
		t.Errorf("expected 'Kept', got %q", mapped[0].Title)
	}
	if mapped[0].Category != "technology" {
		t.Errorf("expected category set, got %q", mapped[0].Category)
	}
	if mapped[0].ID != EncodeID("https://example.com/a") {
		t.Error("expected identifier derived from URL")
	}
}

func TestByCategoryLiveFetch(t *testing.T) {
	server := fakeNewsAPI(t, 25, []apiArticle{
		sampleAPIArticle("https://example.com/one", "First"),
		sampleAPIArticle("https://example.com/two", "Second"),
	})
	db := newTestDB(t)
	svc := NewService(db, newTestClient(server.URL), 10)

	bundle := svc.ByCategory(context.Background(), "technology", 1, 10)
	if len(bundle.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(bundle.Articles))
	}
	if !bundle.HasMore {
		t.Error("expected hasMore with 25 total results")
	}

	// Fetched articles end up in the cache.
	count, _ := db.CountArticles()
	if count != 2 {
		t.Errorf("expected 2 cached articles, got %d", count)
	}
}

func TestByCategoryLastPage(t *testing.T) {
	server := fakeNewsAPI(t, 10, []apiArticle{
		sampleAPIArticle("https://example.com/one", "Only"),
	})
	db := newTestDB(t)
	svc := NewService(db, newTestClient(server.URL), 10)

	bundle := svc.ByCategory(context.Background(), "home", 1, 10)
	if bundle.HasMore {
		t.Error("expected hasMore=false when totalResults equals page*pageSize")
	}
}

func TestByCategoryFallbackToCache(t *testing.T) {
	server := failingNewsAPI(t)
	db := newTestDB(t)
	db.InsertArticle(&database.Article{
		APIID:       EncodeID("https://example.com/cached"),
		Title:       "Cached Article",
		URL:         "https://example.com/cached",
		Category:    "health",
		ReadingTime: 2,
	})
	svc := NewService(db, newTestClient(server.URL), 10)

	bundle := svc.ByCategory(context.Background(), "health", 1, 10)
	if len(bundle.Articles) != 1 {
		t.Fatalf("expected 1 cached article, got %d", len(bundle.Articles))
	}
	if bundle.Articles[0].Title != "Cached Article" {
		t.Errorf("expected cached article, got %q", bundle.Articles[0].Title)
	}
	if bundle.HasMore {
		t.Error("expected hasMore=false for cached results")
	}
}

func TestByCategoryEmptyWhenNothing(t *testing.T) {
	server := failingNewsAPI(t)
	db := newTestDB(t)
	svc := NewService(db, newTestClient(server.URL), 10)

	bundle := svc.ByCategory(context.Background(), "science", 1, 10)
	if bundle == nil {
		t.Fatal("expected a bundle, not nil")
	}
	if len(bundle.Articles) != 0 || bundle.HasMore {
		t.Error("expected empty bundle with hasMore=false")
	}
}

func TestSearchAbsorbsErrors(t *testing.T) {
	server := failingNewsAPI(t)
	db := newTestDB(t)
	svc := NewService(db, newTestClient(server.URL), 10)

	bundle := svc.Search(context.Background(), "anything", 1, 10)
	if len(bundle.Articles) != 0 || bundle.HasMore {
		t.Error("expected empty bundle on search failure")
	}
}

func TestSearchReturnsResults(t *testing.T) {
	server := fakeNewsAPI(t, 1, []apiArticle{
		sampleAPIArticle("https://example.com/hit", "Search Hit"),
	})
	db := newTestDB(t)
	svc := NewService(db, newTestClient(server.URL), 10)

	bundle := svc.Search(context.Background(), "hit", 1, 10)
	if len(bundle.Articles) != 1 {
		t.Fatalf("expected 1 result, got %d", len(bundle.Articles))
	}
	if bundle.Articles[0].Category != "home" {
		t.Errorf("expected search results categorized as home, got %q", bundle.Articles[0].Category)
	}
}

func TestArticleByIDViaSearch(t *testing.T) {
	articleURL := "https://example.com/exact-match"
	server := fakeNewsAPI(t, 1, []apiArticle{
		sampleAPIArticle(articleURL, "Exact Match"),
	})
	db := newTestDB(t)
	svc := NewService(db, newTestClient(server.URL), 10)

	id := EncodeID(articleURL)
	article := svc.ArticleByID(context.Background(), id)
	if article == nil {
		t.Fatal("expected article")
	}
	if article.ID != id {
		t.Errorf("expected requested id preserved, got %q", article.ID)
	}

	// Resolution saves the article for future lookups.
	cached, _ := db.GetArticleByAPIID(id)
	if cached == nil {
		t.Error("expected resolved article to be cached")
	}
}

func TestArticleByIDFromCache(t *testing.T) {
	server := failingNewsAPI(t)
	db := newTestDB(t)
	articleURL := "https://example.com/stored"
	id := EncodeID(articleURL)
	db.InsertArticle(&database.Article{
		APIID:       id,
		Title:       "Stored Article",
		URL:         articleURL,
		Category:    "business",
		ReadingTime: 4,
	})
	svc := NewService(db, newTestClient(server.URL), 10)

	article := svc.ArticleByID(context.Background(), id)
	if article == nil {
		t.Fatal("expected article from cache")
	}
	if article.Title != "Stored Article" {
		t.Errorf("expected cached article, got %q", article.Title)
	}
	if article.EstimatedReadingTime != 4 {
		t.Errorf("expected reading time 4, got %d", article.EstimatedReadingTime)
	}
}

func TestArticleByIDSynthesized(t *testing.T) {
	server := failingNewsAPI(t)
	db := newTestDB(t)
	svc := NewService(db, newTestClient(server.URL), 10)

	id := EncodeID("https://techcrunch.com/2026/01/ai-chips-breakthrough")
	article := svc.ArticleByID(context.Background(), id)
	if article == nil {
		t.Fatal("expected synthesized article")
	}
	if article.Title != "Ai chips breakthrough" {
		t.Errorf("unexpected title %q", article.Title)
	}
	if article.Category != "technology" {
		t.Errorf("expected technology from domain guess, got %q", article.Category)
	}
	if article.EstimatedReadingTime != 1 {
		t.Errorf("expected reading time 1, got %d", article.EstimatedReadingTime)
	}
	if article.Source.Name != "techcrunch.com" {
		t.Errorf("expected domain as source, got %q", article.Source.Name)
	}
}

func TestArticleByIDUndecodableUncached(t *testing.T) {
	server := failingNewsAPI(t)
	db := newTestDB(t)
	svc := NewService(db, newTestClient(server.URL), 10)

	if article := svc.ArticleByID(context.Background(), "!!bad!!"); article != nil {
		t.Error("expected nil for undecodable, uncached identifier")
	}
}

func TestGuessCategory(t *testing.T) {
	cases := map[string]string{
		"techcrunch.com":     "technology",
		"wired.com":          "technology",
		"healthline.com":     "health",
		"espn.sport.com":     "sports",
		"businessinsider.de": "business",
		"example.com":        "home",
	}
	for domain, want := range cases {
		if got := guessCategory(domain); got != want {
			t.Errorf("guessCategory(%q) = %q, want %q", domain, got, want)
		}
	}
}

func TestStripHTML(t *testing.T) {
	got := stripHTML("<p>Hello &amp; <b>world</b></p>")
	if got != "Hello & world" {
		t.Errorf("expected 'Hello & world', got %q", got)
	}
}

func TestExtractSourceName(t *testing.T) {
	cases := map[string]string{
		"https://feeds.bbci.co.uk/news/rss.xml":  "Co",
		"https://www.espn.com/espn/rss/news":     "Espn",
		"http://rss.cnn.com/rss/edition.rss":     "Cnn",
	}
	for feedURL, want := range cases {
		if got := extractSourceName(feedURL); got != want {
			t.Errorf("extractSourceName(%q) = %q, want %q", feedURL, got, want)
		}
	}
}
