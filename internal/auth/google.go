package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"concentribe/internal/database"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// DefaultPreferences is the preferences JSON assigned to new accounts.
const DefaultPreferences = `{"interests":[],"sources":[],"formats":[],"focusDuration":20}`

// GoogleAuth handles the Google OAuth login flow: building the consent URL,
// exchanging the callback code, and mapping the Google profile to a local
// user account.
type GoogleAuth struct {
	config      *oauth2.Config
	db          *database.DB
	userinfoURL string
}

// NewGoogleAuth reads the OAuth client credentials from the named
// environment variables. Returns a disabled authenticator when either is
// missing.
func NewGoogleAuth(db *database.DB, clientIDEnv, clientSecretEnv, redirectURL string) *GoogleAuth {
	clientID := os.Getenv(clientIDEnv)
	clientSecret := os.Getenv(clientSecretEnv)
	if clientID == "" || clientSecret == "" {
		log.Printf("Google OAuth is not configured. Set %s and %s to enable it.", clientIDEnv, clientSecretEnv)
		return &GoogleAuth{db: db, userinfoURL: userinfoURL}
	}
	return &GoogleAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
		db:          db,
		userinfoURL: userinfoURL,
	}
}

// Enabled reports whether OAuth credentials are configured.
func (g *GoogleAuth) Enabled() bool {
	return g.config != nil
}

// LoginURL builds the consent page URL carrying the anti-forgery state.
func (g *GoogleAuth) LoginURL(state string) string {
	return g.config.AuthCodeURL(state)
}

type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// HandleCallback exchanges the authorization code, fetches the Google
// profile, and returns the matching local user. An account is created on
// first sign-in; an existing account with the same email is linked.
func (g *GoogleAuth) HandleCallback(ctx context.Context, code string) (*database.User, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	profile, err := g.fetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("google profile has no id")
	}

	user, err := g.db.GetUserByGoogleID(profile.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	if profile.Email != "" {
		user, err = g.db.GetUserByEmail(profile.Email)
		if err != nil {
			return nil, err
		}
	}
	if user != nil {
		if err := g.db.LinkGoogleAccount(user.ID, profile.ID, profile.Picture); err != nil {
			return nil, fmt.Errorf("linking google account: %w", err)
		}
		return g.db.GetUser(user.ID)
	}

	return g.createUser(profile)
}

func (g *GoogleAuth) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	client := g.config.Client(ctx, token)
	resp, err := client.Get(g.userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching google profile: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}
	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding google profile: %w", err)
	}
	return &profile, nil
}

func (g *GoogleAuth) createUser(profile *googleProfile) (*database.User, error) {
	username := "user_" + profile.ID
	if profile.Email != "" {
		username = strings.SplitN(profile.Email, "@", 2)[0]
	}
	password, err := HashPassword(RandomPassword())
	if err != nil {
		return nil, err
	}

	preferences := DefaultPreferences
	user := &database.User{
		Username:    username,
		Email:       profile.Email,
		Password:    password,
		GoogleID:    &profile.ID,
		Preferences: &preferences,
	}
	if profile.Name != "" {
		user.Name = &profile.Name
	}
	if profile.Picture != "" {
		user.Avatar = &profile.Picture
	}

	id, err := g.db.CreateUser(user)
	if err != nil {
		return nil, fmt.Errorf("creating user from google profile: %w", err)
	}
	return g.db.GetUser(id)
}
