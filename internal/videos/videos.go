// Package videos wraps the YouTube Data API v3 search endpoint.
package videos

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Video is one search result.
type Video struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ChannelTitle string   `json:"channelTitle"`
	Description  string   `json:"description"`
	PublishedAt  string   `json:"publishedAt"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Tags         []string `json:"tags"`
}

// Client calls the YouTube search API. All lookups degrade to empty result
// sets when the API key is missing or the upstream call fails.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient reads the API key from the named environment variable.
func NewClient(apiKeyEnv, baseURL string) *Client {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		log.Printf("Warning: %s not set. Video search will return empty results.", apiKeyEnv)
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// IsConfigured reports whether an API key is available.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Description  string `json:"description"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns up to maxResults videos matching the query. Errors are
// absorbed into an empty result.
func (c *Client) Search(ctx context.Context, query string, maxResults int) []Video {
	if !c.IsConfigured() {
		return nil
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		log.Printf("Error building YouTube request: %v", err)
		return nil
	}
	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("Error searching YouTube videos: %v", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("YouTube API error: status %d", resp.StatusCode)
		return nil
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("Error decoding YouTube response: %v", err)
		return nil
	}

	videos := make([]Video, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			Description:  item.Snippet.Description,
			PublishedAt:  item.Snippet.PublishedAt,
			ThumbnailURL: item.Snippet.Thumbnails.Medium.URL,
			Tags:         []string{},
		})
	}
	return videos
}

// ByCategory searches for news videos in a category. The word "news" is
// appended unless the category already mentions it.
func (c *Client) ByCategory(ctx context.Context, category string, maxResults int) []Video {
	query := category
	if !strings.Contains(category, "news") {
		query = fmt.Sprintf("%s news", category)
	}
	return c.Search(ctx, query, maxResults)
}

// FocusVideos gathers videos for a focus session from the user's interests.
// Each interest expands into several query variants; results are deduped by
// video ID, shuffled, and capped at maxResults.
func (c *Client) FocusVideos(ctx context.Context, interests, sources []string, maxResults int) []Video {
	if len(interests) == 0 {
		interests = []string{"technology", "science", "health"}
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	seen := make(map[string]bool)
	var collected []Video
	add := func(videos []Video) {
		for _, video := range videos {
			if !seen[video.ID] {
				seen[video.ID] = true
				collected = append(collected, video)
			}
		}
	}

	for _, interest := range interests {
		queries := []string{
			fmt.Sprintf("%s news", interest),
			fmt.Sprintf("latest %s news", interest),
			fmt.Sprintf("%s updates", interest),
		}
		for _, source := range sources {
			queries = append(queries, fmt.Sprintf("%s %s news", interest, source))
		}
		for _, query := range queries {
			add(c.Search(ctx, query, 2))
			if len(collected) >= maxResults {
				break
			}
		}
		if len(collected) >= maxResults {
			break
		}
	}

	// Still short: fall back to the individual words of each interest.
	if len(collected) < maxResults {
		for _, interest := range interests {
			for _, word := range strings.Fields(interest) {
				if len(word) < 3 {
					continue
				}
				add(c.Search(ctx, fmt.Sprintf("%s news", word), 2))
				if len(collected) >= maxResults {
					break
				}
			}
			if len(collected) >= maxResults {
				break
			}
		}
	}

	rand.Shuffle(len(collected), func(i, j int) {
		collected[i], collected[j] = collected[j], collected[i]
	})
	if len(collected) > maxResults {
		collected = collected[:maxResults]
	}
	return collected
}
