package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/pkg/config"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookie    = "session"
	oauthStateCookie = "oauth_state"
	sessionTTL       = 24 * time.Hour
)

var ErrNoSessionSecret = errors.New("session secret is not configured")

type SessionData struct {
	Login     string    `json:"login"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionMiddleware handles session management using cookies
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", getSessionFromCookie(c))
		c.Next()
	}
}

// getSessionFromCookie extracts and validates session data from cookie
func getSessionFromCookie(c *gin.Context) *SessionData {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil
	}

	// Split cookie value (signature.data)
	parts := strings.Split(cookie, ".")
	if len(parts) != 2 {
		return nil
	}

	signature, data := parts[0], parts[1]
	if !verifySignature(data, signature) {
		return nil
	}

	decodedData, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return nil
	}

	var sessionData SessionData
	if err := json.Unmarshal(decodedData, &sessionData); err != nil {
		return nil
	}

	if time.Now().After(sessionData.ExpiresAt) {
		return nil
	}

	return &sessionData
}

// SetSession creates a new session cookie for the owner
func SetSession(c *gin.Context, owner *models.Owner) error {
	value, err := encodeSession(SessionData{
		Login:     owner.Login,
		Name:      owner.Name,
		AvatarURL: owner.AvatarURL,
		ExpiresAt: time.Now().Add(sessionTTL),
	})
	if err != nil {
		return err
	}

	c.SetCookie(sessionCookie, value, int(sessionTTL.Seconds()), "/", "", false, true)
	return nil
}

func encodeSession(sessionData SessionData) (string, error) {
	if !sessionSecretSet() {
		return "", ErrNoSessionSecret
	}

	data, err := json.Marshal(sessionData)
	if err != nil {
		return "", err
	}

	encodedData := base64.URLEncoding.EncodeToString(data)
	return createSignature(encodedData) + "." + encodedData, nil
}

// ClearSession removes the session cookie
func ClearSession(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// SetOAuthState remembers the state parameter of an OAuth round trip
func SetOAuthState(c *gin.Context, state string) {
	c.SetCookie(oauthStateCookie, state, 600, "/auth/github", "", false, true)
}

// ConsumeOAuthState checks state against the remembered value and forgets it
func ConsumeOAuthState(c *gin.Context, state string) bool {
	expected, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/auth/github", "", false, true)
	if err != nil || expected == "" || state == "" {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(state))
}

// createSignature creates HMAC signature for data
func createSignature(data string) string {
	h := hmac.New(sha256.New, []byte(config.AppConfig.Session.Secret))
	h.Write([]byte(data))
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}

func sessionSecretSet() bool {
	return config.AppConfig != nil && config.AppConfig.Session.Configured()
}

// verifySignature verifies HMAC signature. Nothing verifies without a secret.
func verifySignature(data, signature string) bool {
	if !sessionSecretSet() {
		return false
	}
	expectedSignature := createSignature(data)
	return hmac.Equal([]byte(signature), []byte(expectedSignature))
}

// GetSession retrieves session data from context
func GetSession(c *gin.Context) *SessionData {
	session, exists := c.Get("session")
	if !exists {
		return nil
	}

	if sessionData, ok := session.(*SessionData); ok {
		return sessionData
	}

	return nil
}
