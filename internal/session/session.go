// Package session implements the admin login session: an opaque random
// session id in a cookie, with the session payload held server-side in a
// storage backend that enforces expiry.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// Store is the global session store instance.
var Store *session.Store

// Data represents the session data structure.
type Data struct {
	Admin      bool
	LoggedInAt time.Time
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Storage.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	byteData, err := Store.Storage.Get(sessionID)
	if err != nil {
		return err
	}

	return json.Unmarshal(byteData, s)
}

// Init initializes the session store with the provided storage backend.
// A nil storage falls back to fiber's in-memory store, used for the sqlite
// engine and in tests.
func Init(storage storage.Storage) {
	if storage == nil {
		Store = session.New()
		return
	}

	Store = session.New(session.Config{
		Storage: storage,
	})
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// IsAuthenticated reports whether the request carries a valid, unexpired
// admin session.
func IsAuthenticated(c *fiber.Ctx) bool {
	sessionID := c.Cookies(CookieName)
	if sessionID == "" {
		return false
	}

	sessData := new(Data)
	if err := sessData.Read(sessionID); err != nil {
		return false
	}

	return sessData.Admin
}

// MarkAuthenticated creates a fresh session id for a successful login, stores
// the admin flag under it and sets the session cookie. Issuing a new id on
// every login prevents session fixation.
func MarkAuthenticated(c *fiber.Ctx, expiry time.Duration, devMode bool) error {
	sessionID, err := GenerateSessionID()
	if err != nil {
		return err
	}

	sessData := &Data{
		Admin:      true,
		LoggedInAt: time.Now().UTC(),
	}

	if err := sessData.Write(sessionID, expiry); err != nil {
		return err
	}

	cookie := &fiber.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		MaxAge:   int(expiry.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if devMode {
		cookie.Secure = false
	}

	c.Cookie(cookie)

	return nil
}

// Clear destroys the session and expires the cookie.
func Clear(c *fiber.Ctx) {
	sessionID := c.Cookies(CookieName)
	if sessionID != "" {
		_ = Store.Storage.Delete(sessionID)
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
