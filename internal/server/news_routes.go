package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"concentribe/internal/feed"
	"concentribe/internal/news"
	"concentribe/internal/videos"
)

// focusCategories is the category mix served in focus mode.
var focusCategories = []string{"technology", "health", "business", "science"}

func (s *Server) handleFeatured(c *gin.Context) {
	bundle := s.news.Featured(c.Request.Context())
	c.JSON(http.StatusOK, bundle)
}

func (s *Server) handleCategory(c *gin.Context) {
	category := c.Param("category")
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", s.news.DefaultPageSize())

	bundle := s.news.ByCategory(c.Request.Context(), category, page, limit)
	c.JSON(http.StatusOK, bundle)
}

func (s *Server) handlePersonalized(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", s.news.DefaultPageSize())
	interests := c.QueryArray("interests")
	sources := c.QueryArray("sources")

	if len(interests) == 0 && len(sources) == 0 {
		bundle := s.news.ByCategory(c.Request.Context(), "home", page, limit)
		c.JSON(http.StatusOK, bundle)
		return
	}

	// Over-fetch so the preference filter still has enough to choose from.
	upstream := s.news.ByCategory(c.Request.Context(), "home", page, limit*2)
	bundle := feed.FilterPersonalized(upstream.Articles, interests, sources, limit, upstream.HasMore)
	c.JSON(http.StatusOK, bundle)
}

func (s *Server) handleArticle(c *gin.Context) {
	article := s.news.ArticleByID(c.Request.Context(), c.Param("id"))
	if article == nil {
		fail(c, http.StatusNotFound, "Article not found")
		return
	}
	c.JSON(http.StatusOK, article)
}

func (s *Server) handleSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		fail(c, http.StatusBadRequest, "Search query is required")
		return
	}
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", s.news.DefaultPageSize())

	bundle := s.news.Search(c.Request.Context(), query, page, limit)
	c.JSON(http.StatusOK, bundle)
}

func (s *Server) handleFocusArticles(c *gin.Context) {
	var collected []news.Article
	for _, category := range focusCategories {
		bundle := s.news.ByCategory(c.Request.Context(), category, 1, 3)
		collected = append(collected, bundle.Articles...)
	}
	c.JSON(http.StatusOK, feed.Mix(collected))
}

func (s *Server) handleVideoSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		fail(c, http.StatusBadRequest, "Search query is required")
		return
	}
	maxResults := intQuery(c, "limit", 5)
	results := s.videos.Search(c.Request.Context(), query, maxResults)
	c.JSON(http.StatusOK, nonNilVideos(results))
}

func (s *Server) handleVideosByCategory(c *gin.Context) {
	maxResults := intQuery(c, "limit", 5)
	results := s.videos.ByCategory(c.Request.Context(), c.Param("category"), maxResults)
	c.JSON(http.StatusOK, nonNilVideos(results))
}

func (s *Server) handleFocusVideos(c *gin.Context) {
	interests := c.QueryArray("interests")
	if len(interests) == 0 {
		interests = focusCategories
	}
	sources := c.QueryArray("sources")
	maxResults := intQuery(c, "limit", 10)

	results := s.videos.FocusVideos(c.Request.Context(), interests, sources, maxResults)
	c.JSON(http.StatusOK, nonNilVideos(results))
}

func nonNilVideos(results []videos.Video) []videos.Video {
	if results == nil {
		return []videos.Video{}
	}
	return results
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
