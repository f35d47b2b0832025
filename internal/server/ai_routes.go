package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concentribe/internal/feed"
	"concentribe/internal/insights"
)

func (s *Server) handleHomeInsights(c *gin.Context) {
	c.JSON(http.StatusOK, s.insights.HomeInsights(c.Request.Context()))
}

func (s *Server) handleArticleInsights(c *gin.Context) {
	articleID := c.Param("articleId")
	article := s.news.ArticleByID(c.Request.Context(), articleID)
	if article == nil {
		fail(c, http.StatusNotFound, "Article not found")
		return
	}

	selected := s.insights.LiveArticleInsights(c.Request.Context(), article)
	if len(selected) == 0 {
		// Build a balanced bundle from the pre-generated catalog, filtered
		// by the article's category. The "seen" parameter lets the client
		// deprioritize insights it already showed.
		candidates := insights.CategoryCandidates(strings.ToLower(article.Category))
		selected = feed.BalancedBundle(candidates, c.QueryArray("seen"))
	}

	for i := range selected {
		selected[i].RelatedArticles = []string{articleID}
	}
	c.JSON(http.StatusOK, selected)
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var body struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Content == "" {
		fail(c, http.StatusBadRequest, "Content is required")
		return
	}
	c.JSON(http.StatusOK, s.insights.Analyze(c.Request.Context(), body.Content))
}

func (s *Server) handleSummarize(c *gin.Context) {
	var body struct {
		Text      string `json:"text"`
		MaxLength int    `json:"maxLength"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Text == "" {
		fail(c, http.StatusBadRequest, "Text content is required")
		return
	}
	summary := s.insights.Summarize(c.Request.Context(), body.Text, body.MaxLength)
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (s *Server) handleFactCheck(c *gin.Context) {
	var body struct {
		Claim string `json:"claim"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Claim == "" {
		fail(c, http.StatusBadRequest, "Claim is required")
		return
	}
	c.JSON(http.StatusOK, s.insights.FactCheck(c.Request.Context(), body.Claim))
}
