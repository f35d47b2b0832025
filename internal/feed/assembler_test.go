package feed

import (
	"strconv"
	"testing"

	"concentribe/internal/insights"
	"concentribe/internal/news"
)

func makeInsights(kind string, n int) []insights.Insight {
	out := make([]insights.Insight, n)
	for i := range out {
		out[i] = insights.Insight{
			ID:   kind + strconv.Itoa(i+1),
			Type: kind,
		}
	}
	return out
}

func countTypes(bundle []insights.Insight) map[string]int {
	counts := make(map[string]int)
	for _, in := range bundle {
		counts[in.Type]++
	}
	return counts
}

func TestBalancedBundleComposition(t *testing.T) {
	candidates := append(makeInsights(insights.TypeTrend, 5),
		append(makeInsights(insights.TypeAnalysis, 5),
			makeInsights(insights.TypeFactCheck, 5)...)...)

	// The shuffle varies order, so assert composition rules over many runs.
	for i := 0; i < 50; i++ {
		bundle := BalancedBundle(candidates, nil)
		if len(bundle) > 5 {
			t.Fatalf("expected at most 5 items, got %d", len(bundle))
		}
		counts := countTypes(bundle)
		if counts[insights.TypeAnalysis] != 1 {
			t.Errorf("expected exactly 1 analysis, got %d", counts[insights.TypeAnalysis])
		}
		if counts[insights.TypeTrend] != 2 {
			t.Errorf("expected exactly 2 trends, got %d", counts[insights.TypeTrend])
		}
		if counts[insights.TypeFactCheck] != 1 {
			t.Errorf("expected exactly 1 fact check, got %d", counts[insights.TypeFactCheck])
		}

		seen := make(map[string]bool)
		for _, in := range bundle {
			if seen[in.ID] {
				t.Errorf("duplicate insight %s in bundle", in.ID)
			}
			seen[in.ID] = true
		}
	}
}

func TestBalancedBundlePadsWhenUnderfilled(t *testing.T) {
	candidates := makeInsights(insights.TypeTrend, 5)
	bundle := BalancedBundle(candidates, nil)
	if len(bundle) != 5 {
		t.Fatalf("expected padding to 5, got %d", len(bundle))
	}
}

func TestBalancedBundleFewCandidates(t *testing.T) {
	candidates := makeInsights(insights.TypeAnalysis, 2)
	bundle := BalancedBundle(candidates, nil)
	if len(bundle) != 2 {
		t.Fatalf("expected 2 items with 2 candidates, got %d", len(bundle))
	}
}

func TestBalancedBundlePrefersUnseen(t *testing.T) {
	candidates := makeInsights(insights.TypeTrend, 4)
	previous := []string{"trend1", "trend2"}

	for i := 0; i < 50; i++ {
		bundle := BalancedBundle(candidates, previous)
		// With 2 unseen trends available, the 2 trend slots must take them.
		if bundle[0].ID == "trend1" || bundle[0].ID == "trend2" ||
			bundle[1].ID == "trend1" || bundle[1].ID == "trend2" {
			t.Fatalf("expected unseen trends first, got %s, %s", bundle[0].ID, bundle[1].ID)
		}
	}
}

func TestBalancedBundleEmpty(t *testing.T) {
	if bundle := BalancedBundle(nil, nil); len(bundle) != 0 {
		t.Errorf("expected empty bundle, got %d items", len(bundle))
	}
}

func sampleArticles() []news.Article {
	return []news.Article{
		{ID: "1", Title: "AI breakthrough", Category: "technology", Source: news.Source{Name: "BBC News"}},
		{ID: "2", Title: "Cup final recap", Category: "sports", Source: news.Source{Name: "ESPN"}},
		{ID: "3", Title: "Market update", Description: "technology stocks rally", Category: "business", Source: news.Source{Name: "CNN"}},
	}
}

func TestFilterPersonalizedByInterest(t *testing.T) {
	bundle := FilterPersonalized(sampleArticles(), []string{"technology"}, nil, 10, false)
	if len(bundle.Articles) != 2 {
		t.Fatalf("expected 2 matches (category + description), got %d", len(bundle.Articles))
	}

	bundle = FilterPersonalized(sampleArticles(), []string{"sports"}, nil, 10, false)
	if len(bundle.Articles) != 1 || bundle.Articles[0].ID != "2" {
		t.Errorf("expected only the sports article, got %v", bundle.Articles)
	}
}

func TestFilterPersonalizedBySource(t *testing.T) {
	bundle := FilterPersonalized(sampleArticles(), nil, []string{"bbc"}, 10, false)
	if len(bundle.Articles) != 1 || bundle.Articles[0].ID != "1" {
		t.Errorf("expected only the BBC article, got %v", bundle.Articles)
	}
}

func TestFilterPersonalizedCombinesGroups(t *testing.T) {
	// Interest matches articles 1 and 3; source matches article 3 only.
	bundle := FilterPersonalized(sampleArticles(), []string{"technology"}, []string{"cnn"}, 10, false)
	if len(bundle.Articles) != 1 || bundle.Articles[0].ID != "3" {
		t.Errorf("expected interest AND source intersection, got %v", bundle.Articles)
	}
}

func TestFilterPersonalizedEmptyFiltersMatchAll(t *testing.T) {
	bundle := FilterPersonalized(sampleArticles(), nil, nil, 10, false)
	if len(bundle.Articles) != 3 {
		t.Errorf("expected all articles with empty filters, got %d", len(bundle.Articles))
	}
}

func TestFilterPersonalizedHasMoreBoundary(t *testing.T) {
	articles := sampleArticles()

	// Strictly more matches than limit.
	bundle := FilterPersonalized(articles, nil, nil, 2, false)
	if len(bundle.Articles) != 2 || !bundle.HasMore {
		t.Errorf("expected truncation with hasMore, got %d/%v", len(bundle.Articles), bundle.HasMore)
	}

	// Exactly limit matches: hasMore follows the upstream signal.
	bundle = FilterPersonalized(articles, nil, nil, 3, false)
	if bundle.HasMore {
		t.Error("expected hasMore=false at exact limit without upstream signal")
	}
	bundle = FilterPersonalized(articles, nil, nil, 3, true)
	if !bundle.HasMore {
		t.Error("expected hasMore=true at exact limit with upstream signal")
	}

	// Fewer matches than limit never report more.
	bundle = FilterPersonalized(articles, nil, nil, 10, true)
	if bundle.HasMore {
		t.Error("expected hasMore=false when under limit")
	}
}

func TestMixPreservesItems(t *testing.T) {
	articles := sampleArticles()
	mixed := Mix(articles)
	if len(mixed) != len(articles) {
		t.Fatalf("expected same length, got %d", len(mixed))
	}
	seen := make(map[string]bool)
	for _, a := range mixed {
		seen[a.ID] = true
	}
	for _, a := range articles {
		if !seen[a.ID] {
			t.Errorf("article %s missing after mix", a.ID)
		}
	}
}
