// Package server exposes the HTTP JSON API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"concentribe/internal/auth"
	"concentribe/internal/database"
	"concentribe/internal/games"
	"concentribe/internal/insights"
	"concentribe/internal/news"
	"concentribe/internal/streak"
	"concentribe/internal/videos"
)

// demoUserID backs requests without a session, so the app works before
// anyone registers.
const demoUserID int64 = 1

const userIDKey = "userID"

// Server wires the domain services into the HTTP API.
type Server struct {
	db       *database.DB
	news     *news.Service
	insights *insights.Generator
	games    *games.Service
	videos   *videos.Client
	google   *auth.GoogleAuth
	sessions *auth.SessionStore
	tracker  *streak.Tracker
	engine   *gin.Engine
}

// New creates the server and registers all routes.
func New(db *database.DB, newsSvc *news.Service, gen *insights.Generator,
	gamesSvc *games.Service, videoClient *videos.Client, google *auth.GoogleAuth) *Server {

	s := &Server{
		db:       db,
		news:     newsSvc,
		insights: gen,
		games:    gamesSvc,
		videos:   videoClient,
		google:   google,
		sessions: auth.NewSessionStore(),
		tracker:  streak.NewTracker(db),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	engine.Use(cors.New(corsConfig))
	engine.Use(s.sessionMiddleware())

	s.engine = engine
	s.routes()
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	api := s.engine.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	api.GET("/news/featured", s.handleFeatured)
	api.GET("/news/category/:category", s.handleCategory)
	api.GET("/news/personalized", s.handlePersonalized)
	api.GET("/news/article/:id", s.handleArticle)
	api.GET("/search", s.handleSearch)

	api.GET("/focus/articles", s.handleFocusArticles)
	api.GET("/focus/videos", s.handleFocusVideos)
	api.GET("/youtube/search", s.handleVideoSearch)
	api.GET("/youtube/category/:category", s.handleVideosByCategory)

	api.GET("/ai/insights", s.handleHomeInsights)
	api.GET("/ai/insights/:articleId", s.handleArticleInsights)
	api.POST("/ai/analyze", s.handleAnalyze)
	api.POST("/ai/summarize", s.handleSummarize)
	api.POST("/ai/factcheck", s.handleFactCheck)

	api.GET("/games/riddles", s.handleRiddles)
	api.GET("/games/tongue-twisters", s.handleTongueTwisters)
	api.GET("/games/sudoku", s.handleSudoku)
	api.POST("/games/sudoku/check", s.handleSudokuCheck)
	api.GET("/games/crossword", s.handleCrossword)
	api.POST("/games/crossword/check", s.handleCrosswordCheck)

	api.GET("/bookmarks", s.handleBookmarks)
	api.POST("/bookmarks", s.handleAddBookmark)
	api.DELETE("/bookmarks/:articleId", s.handleRemoveBookmark)

	api.GET("/badges", s.handleBadges)
	api.GET("/badges/user", s.handleUserBadges)
	api.POST("/badges/award", s.handleAwardBadge)

	api.GET("/communities", s.handleCommunities)
	api.GET("/communities/joined", s.handleJoinedCommunities)
	api.GET("/communities/feed", s.handleCommunityFeed)
	api.POST("/communities/:id/join", s.handleJoinCommunity)
	api.POST("/communities/:id/leave", s.handleLeaveCommunity)
	api.GET("/communities/:id/posts", s.handleCommunityPosts)
	api.POST("/communities/:id/posts", s.handleCreatePost)

	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)
	api.POST("/logout", s.handleLogout)
	api.GET("/user", s.handleCurrentUser)
	api.GET("/preferences", s.handleGetPreferences)
	api.PUT("/preferences", s.handleUpdatePreferences)
	api.POST("/streak", s.handleStreak)

	s.engine.GET("/auth/google", s.handleGoogleLogin)
	s.engine.GET("/auth/google/callback", s.handleGoogleCallback)
}

// sessionMiddleware resolves the session cookie to a user ID. Requests
// without a valid session act as the demo user.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := demoUserID
		if token, err := c.Cookie(auth.SessionCookie); err == nil {
			if id, ok := s.sessions.Get(token); ok {
				userID = id
			}
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func (s *Server) currentUserID(c *gin.Context) int64 {
	if id, ok := c.Get(userIDKey); ok {
		return id.(int64)
	}
	return demoUserID
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
