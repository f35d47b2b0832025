package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"concentribe/internal/auth"
	"concentribe/internal/database"
)

const oauthStateCookie = "concentribe_oauth_state"

// Preferences is the user preference payload stored as JSON.
type Preferences struct {
	Interests     []string `json:"interests"`
	Sources       []string `json:"sources"`
	Formats       []string `json:"formats"`
	FocusDuration int      `json:"focusDuration"`
}

func defaultPreferences() Preferences {
	return Preferences{
		Interests:     []string{},
		Sources:       []string{},
		Formats:       []string{},
		FocusDuration: 20,
	}
}

func (s *Server) handleRegister(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil ||
		body.Username == "" || body.Email == "" || body.Password == "" {
		fail(c, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	if existing, err := s.db.GetUserByUsername(body.Username); err == nil && existing != nil {
		fail(c, http.StatusBadRequest, "Username already exists")
		return
	}
	if existing, err := s.db.GetUserByEmail(body.Email); err == nil && existing != nil {
		fail(c, http.StatusBadRequest, "Email already exists")
		return
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		log.Printf("Registration error: %v", err)
		fail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	name := body.Name
	if name == "" {
		name = body.Username
	}
	preferences := auth.DefaultPreferences
	id, err := s.db.CreateUser(&database.User{
		Username:    body.Username,
		Email:       body.Email,
		Password:    hash,
		Name:        &name,
		Preferences: &preferences,
	})
	if err != nil {
		log.Printf("Registration error: %v", err)
		fail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	user, err := s.db.GetUser(id)
	if err != nil || user == nil {
		fail(c, http.StatusInternalServerError, "Registration failed")
		return
	}
	s.startSession(c, user.ID)
	c.JSON(http.StatusCreated, userJSON(user))
}

func (s *Server) handleLogin(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Username == "" || body.Password == "" {
		fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := s.db.GetUserByUsername(body.Username)
	if err != nil {
		log.Printf("Login error: %v", err)
		fail(c, http.StatusInternalServerError, "Authentication failed")
		return
	}
	if user == nil || !auth.VerifyPassword(body.Password, user.Password) {
		fail(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	s.startSession(c, user.ID)
	c.JSON(http.StatusOK, userJSON(user))
}

func (s *Server) handleLogout(c *gin.Context) {
	if token, err := c.Cookie(auth.SessionCookie); err == nil {
		s.sessions.Delete(token)
	}
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusOK)
}

func (s *Server) handleCurrentUser(c *gin.Context) {
	if token, err := c.Cookie(auth.SessionCookie); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	} else if _, ok := s.sessions.Get(token); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	user, err := s.db.GetUser(s.currentUserID(c))
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, userJSON(user))
}

func (s *Server) handleGetPreferences(c *gin.Context) {
	user, err := s.db.GetUser(s.currentUserID(c))
	if err != nil || user == nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	preferences := defaultPreferences()
	if user.Preferences != nil && *user.Preferences != "" {
		if err := json.Unmarshal([]byte(*user.Preferences), &preferences); err != nil {
			log.Printf("Malformed preferences for user %d: %v", user.ID, err)
			preferences = defaultPreferences()
		}
	}
	c.JSON(http.StatusOK, preferences)
}

func (s *Server) handleUpdatePreferences(c *gin.Context) {
	var preferences Preferences
	if err := c.ShouldBindJSON(&preferences); err != nil {
		fail(c, http.StatusBadRequest, "Invalid preferences payload")
		return
	}
	if preferences.Interests == nil {
		preferences.Interests = []string{}
	}
	if preferences.Sources == nil {
		preferences.Sources = []string{}
	}
	if preferences.Formats == nil {
		preferences.Formats = []string{}
	}
	if preferences.FocusDuration <= 0 {
		preferences.FocusDuration = 20
	}

	encoded, err := json.Marshal(preferences)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update preferences")
		return
	}
	if err := s.db.UpdatePreferences(s.currentUserID(c), string(encoded)); err != nil {
		log.Printf("Error updating preferences: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to update preferences")
		return
	}
	c.JSON(http.StatusOK, preferences)
}

func (s *Server) handleStreak(c *gin.Context) {
	result, err := s.tracker.Visit(s.currentUserID(c), time.Now())
	if err != nil {
		log.Printf("Error updating streak: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to update streak")
		return
	}
	badges := result.Badges
	if badges == nil {
		badges = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"streak":    result.Streak,
		"lastVisit": result.LastVisit,
		"badges":    badges,
	})
}

func (s *Server) handleGoogleLogin(c *gin.Context) {
	if !s.google.Enabled() {
		fail(c, http.StatusNotFound, "Google OAuth is not configured")
		return
	}
	state := uuid.NewString()
	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, s.google.LoginURL(state))
}

func (s *Server) handleGoogleCallback(c *gin.Context) {
	if !s.google.Enabled() {
		fail(c, http.StatusNotFound, "Google OAuth is not configured")
		return
	}

	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		c.Redirect(http.StatusFound, "/auth?error=google_login_failed")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	user, err := s.google.HandleCallback(c.Request.Context(), c.Query("code"))
	if err != nil {
		log.Printf("Google login failed: %v", err)
		c.Redirect(http.StatusFound, "/auth?error=google_login_failed")
		return
	}

	s.startSession(c, user.ID)
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) startSession(c *gin.Context, userID int64) {
	token := s.sessions.Create(userID)
	c.SetCookie(auth.SessionCookie, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
}

// userJSON serializes a user without the password hash.
func userJSON(user *database.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"name":      strOrEmpty(user.Name),
		"avatar":    strOrEmpty(user.Avatar),
		"bio":       strOrEmpty(user.Bio),
		"streak":    user.Streak,
		"lastVisit": strOrEmpty(user.LastVisit),
	}
}
