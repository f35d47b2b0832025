package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"

	"concentribe/internal/database"
)

var markdown = goldmark.New()

func (s *Server) handleBookmarks(c *gin.Context) {
	userID := s.currentUserID(c)
	rows, err := s.db.GetBookmarkedArticles(userID)
	if err != nil {
		log.Printf("Error fetching bookmarks: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch bookmarks")
		return
	}
	articles := make([]gin.H, 0, len(rows))
	for i := range rows {
		articles = append(articles, articleJSON(&rows[i]))
	}
	c.JSON(http.StatusOK, articles)
}

func (s *Server) handleAddBookmark(c *gin.Context) {
	var body struct {
		ArticleID string `json:"articleId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ArticleID == "" {
		fail(c, http.StatusBadRequest, "Article ID is required")
		return
	}
	userID := s.currentUserID(c)

	row, err := s.db.GetArticleByAPIID(body.ArticleID)
	if err != nil {
		log.Printf("Error looking up article %s: %v", body.ArticleID, err)
		fail(c, http.StatusInternalServerError, "Failed to add bookmark")
		return
	}
	if row == nil {
		article := s.news.ArticleByID(c.Request.Context(), body.ArticleID)
		if article == nil {
			fail(c, http.StatusNotFound, "Article not found")
			return
		}
		row, err = s.news.EnsureCached(article)
		if err != nil || row == nil {
			log.Printf("Error storing article %s: %v", body.ArticleID, err)
			fail(c, http.StatusInternalServerError, "Failed to add bookmark")
			return
		}
	}

	if err := s.db.AddBookmark(userID, row.ID); err != nil {
		log.Printf("Error adding bookmark: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to add bookmark")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleRemoveBookmark(c *gin.Context) {
	userID := s.currentUserID(c)
	row, err := s.db.GetArticleByAPIID(c.Param("articleId"))
	if err != nil || row == nil {
		fail(c, http.StatusNotFound, "Article not found")
		return
	}

	removed, err := s.db.RemoveBookmark(userID, row.ID)
	if err != nil {
		log.Printf("Error removing bookmark: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to remove bookmark")
		return
	}
	if !removed {
		fail(c, http.StatusNotFound, "Bookmark not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleBadges(c *gin.Context) {
	badges, err := s.db.GetBadges()
	if err != nil {
		log.Printf("Error fetching badges: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch badges")
		return
	}
	out := make([]gin.H, 0, len(badges))
	for i := range badges {
		out = append(out, badgeJSON(&badges[i], nil))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUserBadges(c *gin.Context) {
	userID := s.currentUserID(c)
	badges, err := s.db.GetUserBadges(userID)
	if err != nil {
		log.Printf("Error fetching user badges: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch user badges")
		return
	}
	out := make([]gin.H, 0, len(badges))
	for i := range badges {
		out = append(out, badgeJSON(&badges[i].Badge, badges[i].EarnedAt))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleAwardBadge(c *gin.Context) {
	var body struct {
		BadgeID string `json:"badgeId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.BadgeID == "" {
		fail(c, http.StatusBadRequest, "Badge ID is required")
		return
	}
	userID := s.currentUserID(c)

	badge, err := s.db.GetBadge(body.BadgeID)
	if err != nil || badge == nil {
		fail(c, http.StatusNotFound, "Badge not found")
		return
	}
	if err := s.db.AwardBadge(userID, body.BadgeID); err != nil {
		log.Printf("Error awarding badge: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to award badge")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleCommunities(c *gin.Context) {
	userID := s.currentUserID(c)
	communities, err := s.db.GetCommunities()
	if err != nil {
		log.Printf("Error fetching communities: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch communities")
		return
	}

	joined, err := s.db.GetUserCommunities(userID)
	if err != nil {
		log.Printf("Error fetching joined communities: %v", err)
	}
	joinedIDs := make(map[int64]bool, len(joined))
	for _, community := range joined {
		joinedIDs[community.ID] = true
	}

	out := make([]gin.H, 0, len(communities))
	for i := range communities {
		out = append(out, s.communityJSON(&communities[i], joinedIDs[communities[i].ID]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleJoinedCommunities(c *gin.Context) {
	userID := s.currentUserID(c)
	communities, err := s.db.GetUserCommunities(userID)
	if err != nil {
		log.Printf("Error fetching joined communities: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch joined communities")
		return
	}
	out := make([]gin.H, 0, len(communities))
	for i := range communities {
		out = append(out, s.communityJSON(&communities[i], true))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCommunityFeed(c *gin.Context) {
	userID := s.currentUserID(c)
	posts, err := s.db.GetFeedPosts(userID)
	if err != nil {
		log.Printf("Error fetching community feed: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch community feed")
		return
	}
	c.JSON(http.StatusOK, s.renderPosts(posts))
}

func (s *Server) handleJoinCommunity(c *gin.Context) {
	communityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid community ID")
		return
	}
	userID := s.currentUserID(c)

	community, err := s.db.GetCommunity(communityID)
	if err != nil || community == nil {
		fail(c, http.StatusNotFound, "Community not found")
		return
	}
	if err := s.db.JoinCommunity(userID, communityID); err != nil {
		log.Printf("Error joining community: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to join community")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleLeaveCommunity(c *gin.Context) {
	communityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid community ID")
		return
	}
	userID := s.currentUserID(c)

	if err := s.db.LeaveCommunity(userID, communityID); err != nil {
		log.Printf("Error leaving community: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to leave community")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleCommunityPosts(c *gin.Context) {
	communityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid community ID")
		return
	}

	community, err := s.db.GetCommunity(communityID)
	if err != nil || community == nil {
		fail(c, http.StatusNotFound, "Community not found")
		return
	}
	posts, err := s.db.GetCommunityPosts(communityID)
	if err != nil {
		log.Printf("Error fetching community posts: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch community posts")
		return
	}
	c.JSON(http.StatusOK, s.renderPosts(posts))
}

func (s *Server) handleCreatePost(c *gin.Context) {
	communityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid community ID")
		return
	}
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" || body.Content == "" {
		fail(c, http.StatusBadRequest, "Title and content are required")
		return
	}
	userID := s.currentUserID(c)

	member, err := s.db.IsMember(userID, communityID)
	if err != nil {
		log.Printf("Error checking membership: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to create post")
		return
	}
	if !member {
		fail(c, http.StatusForbidden, "Join the community before posting")
		return
	}

	post := &database.CommunityPost{
		CommunityID: communityID,
		UserID:      userID,
		Title:       body.Title,
		Content:     body.Content,
	}
	id, err := s.db.InsertPost(post)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to create post")
		return
	}
	post.ID = id
	c.JSON(http.StatusCreated, s.postJSON(post))
}

func (s *Server) communityJSON(community *database.Community, joined bool) gin.H {
	memberCount, err := s.db.MemberCount(community.ID)
	if err != nil {
		log.Printf("Error counting members for community %d: %v", community.ID, err)
	}

	var topics []string
	if community.Topics != nil {
		if err := json.Unmarshal([]byte(*community.Topics), &topics); err != nil {
			log.Printf("Malformed topics for community %d: %v", community.ID, err)
		}
	}
	if topics == nil {
		topics = []string{}
	}

	description := ""
	if community.Description != nil {
		description = *community.Description
	}
	image := "https://api.dicebear.com/7.x/identicon/svg?seed=" + community.Name
	if community.ImageURL != nil && *community.ImageURL != "" {
		image = *community.ImageURL
	}

	return gin.H{
		"id":          strconv.FormatInt(community.ID, 10),
		"name":        community.Name,
		"description": description,
		"memberCount": memberCount,
		"topics":      topics,
		"image":       image,
		"joined":      joined,
	}
}

// renderPosts converts post rows to the wire shape, rendering the markdown
// body to HTML.
func (s *Server) renderPosts(posts []database.CommunityPost) []gin.H {
	authors := make(map[int64]*database.User)
	out := make([]gin.H, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		if _, ok := authors[post.UserID]; !ok {
			user, err := s.db.GetUser(post.UserID)
			if err != nil {
				log.Printf("Error loading post author %d: %v", post.UserID, err)
			}
			authors[post.UserID] = user
		}
		out = append(out, s.postJSONWithAuthor(post, authors[post.UserID]))
	}
	return out
}

func (s *Server) postJSON(post *database.CommunityPost) gin.H {
	user, err := s.db.GetUser(post.UserID)
	if err != nil {
		log.Printf("Error loading post author %d: %v", post.UserID, err)
	}
	return s.postJSONWithAuthor(post, user)
}

func (s *Server) postJSONWithAuthor(post *database.CommunityPost, author *database.User) gin.H {
	name := "Anonymous"
	seed := "Anonymous"
	if author != nil {
		seed = author.Username
		if author.Name != nil && *author.Name != "" {
			name = *author.Name
		} else {
			name = author.Username
		}
	}

	var rendered bytes.Buffer
	if err := markdown.Convert([]byte(post.Content), &rendered); err != nil {
		log.Printf("Error rendering post %d: %v", post.ID, err)
		rendered.Reset()
		rendered.WriteString(post.Content)
	}

	createdAt := ""
	if post.CreatedAt != nil {
		createdAt = *post.CreatedAt
	}

	return gin.H{
		"id":          strconv.FormatInt(post.ID, 10),
		"communityId": strconv.FormatInt(post.CommunityID, 10),
		"title":       post.Title,
		"content":     post.Content,
		"contentHtml": rendered.String(),
		"author": gin.H{
			"name":   name,
			"avatar": "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed,
		},
		"createdAt": createdAt,
	}
}

func articleJSON(row *database.Article) gin.H {
	out := gin.H{
		"id":                   row.APIID,
		"title":                row.Title,
		"description":          strOrEmpty(row.Description),
		"content":              strOrEmpty(row.Content),
		"url":                  row.URL,
		"image":                strOrEmpty(row.ImageURL),
		"publishedAt":          strOrEmpty(row.PublishedAt),
		"category":             row.Category,
		"estimatedReadingTime": row.ReadingTime,
	}
	sourceName := "Unknown"
	if row.SourceName != nil && *row.SourceName != "" {
		sourceName = *row.SourceName
	}
	out["source"] = gin.H{"id": row.SourceID, "name": sourceName}
	return out
}

func badgeJSON(badge *database.Badge, earnedAt *string) gin.H {
	out := gin.H{
		"id":              badge.ID,
		"title":           badge.Title,
		"icon":            strOrEmpty(badge.Icon),
		"backgroundColor": strOrEmpty(badge.BackgroundColor),
		"description":     strOrEmpty(badge.Description),
	}
	if earnedAt != nil {
		out["dateEarned"] = *earnedAt
	}
	return out
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
