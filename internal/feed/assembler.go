// Package feed turns larger candidate pools into small display-ready sets:
// balanced insight bundles for article pages and keyword-filtered article
// lists for the personalized feed.
package feed

import (
	"math/rand"
	"strings"

	"concentribe/internal/insights"
	"concentribe/internal/news"
)

const bundleSize = 5

// BalancedBundle selects at most one analysis, two trends, and one fact
// check from the candidates, padding with further candidates up to five
// items. Buckets are shuffled so repeated refreshes vary; insight IDs in
// previous (the set shown last cycle) are deprioritized.
func BalancedBundle(candidates []insights.Insight, previous []string) []insights.Insight {
	prev := make(map[string]struct{}, len(previous))
	for _, id := range previous {
		prev[id] = struct{}{}
	}

	order := func(bucket []insights.Insight) []insights.Insight {
		shuffled := make([]insights.Insight, len(bucket))
		copy(shuffled, bucket)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		var unseen, seen []insights.Insight
		for _, in := range shuffled {
			if _, ok := prev[in.ID]; ok {
				seen = append(seen, in)
			} else {
				unseen = append(unseen, in)
			}
		}
		return append(unseen, seen...)
	}

	byType := make(map[string][]insights.Insight)
	for _, in := range candidates {
		byType[in.Type] = append(byType[in.Type], in)
	}

	selected := make([]insights.Insight, 0, bundleSize)
	picked := make(map[string]struct{})
	take := func(bucket []insights.Insight, n int) int {
		taken := 0
		for _, in := range order(bucket) {
			if taken == n {
				break
			}
			selected = append(selected, in)
			picked[in.ID] = struct{}{}
			taken++
		}
		return taken
	}

	got := take(byType[insights.TypeAnalysis], 1)
	got += take(byType[insights.TypeTrend], 2)
	got += take(byType[insights.TypeFactCheck], 1)

	// Pad only when some type bucket came up short; a full balanced set of
	// four is not topped up past its per-type caps.
	if got < 4 && len(selected) < bundleSize {
		for _, in := range order(candidates) {
			if len(selected) >= bundleSize {
				break
			}
			if _, ok := picked[in.ID]; ok {
				continue
			}
			selected = append(selected, in)
			picked[in.ID] = struct{}{}
		}
	}

	return selected
}

// FilterPersonalized keeps articles matching any selected interest AND any
// selected source, where an empty filter group matches everything. The
// result is truncated to limit; hasMore is set only when strictly more
// matches existed than were returned, or exactly limit matched and the
// upstream signaled further pages.
func FilterPersonalized(articles []news.Article, interests, sources []string, limit int, upstreamHasMore bool) *news.Bundle {
	if limit <= 0 {
		limit = 10
	}

	matched := []news.Article{}
	for _, a := range articles {
		if matchesInterests(&a, interests) && matchesSources(&a, sources) {
			matched = append(matched, a)
		}
	}

	hasMore := len(matched) > limit || (len(matched) == limit && upstreamHasMore)
	if len(matched) > limit {
		matched = matched[:limit]
	}

	return &news.Bundle{Articles: matched, HasMore: hasMore}
}

func matchesInterests(a *news.Article, interests []string) bool {
	if len(interests) == 0 {
		return true
	}
	category := strings.ToLower(a.Category)
	title := strings.ToLower(a.Title)
	description := strings.ToLower(a.Description)
	for _, interest := range interests {
		needle := strings.ToLower(interest)
		if strings.Contains(category, needle) ||
			strings.Contains(title, needle) ||
			strings.Contains(description, needle) {
			return true
		}
	}
	return false
}

func matchesSources(a *news.Article, sources []string) bool {
	if len(sources) == 0 {
		return true
	}
	name := strings.ToLower(a.Source.Name)
	for _, source := range sources {
		if strings.Contains(name, strings.ToLower(source)) {
			return true
		}
	}
	return false
}

// Mix returns a shuffled copy of the articles, used to interleave categories
// for focus mode reading.
func Mix(articles []news.Article) []news.Article {
	mixed := make([]news.Article, len(articles))
	copy(mixed, articles)
	rand.Shuffle(len(mixed), func(i, j int) {
		mixed[i], mixed[j] = mixed[j], mixed[i]
	})
	return mixed
}
