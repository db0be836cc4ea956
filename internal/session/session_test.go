package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID()
	require.NoError(t, err)

	b, err := GenerateSessionID()
	require.NoError(t, err)

	assert.Len(t, a, 64) // 32 bytes hex encoded
	assert.NotEqual(t, a, b)
}

func TestWriteReadRoundTrip(t *testing.T) {
	Init(nil)

	id, err := GenerateSessionID()
	require.NoError(t, err)

	in := &Data{Admin: true, LoggedInAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, in.Write(id, time.Minute))

	out := new(Data)
	require.NoError(t, out.Read(id))
	assert.True(t, out.Admin)
	assert.Equal(t, in.LoggedInAt, out.LoggedInAt.Truncate(time.Second))
}

func TestMarkAuthenticatedAndClear(t *testing.T) {
	Init(nil)

	app := fiber.New()

	app.Get("/login", func(c *fiber.Ctx) error {
		return MarkAuthenticated(c, time.Minute, true)
	})
	app.Get("/check", func(c *fiber.Ctx) error {
		if IsAuthenticated(c) {
			return c.SendString("yes")
		}
		return c.SendString("no")
	})
	app.Get("/logout", func(c *fiber.Ctx) error {
		Clear(c)
		return c.SendString("bye")
	})

	// login sets the cookie
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)

	var sessionCookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == CookieName {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)

	// check with cookie
	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	req.AddCookie(sessionCookie)
	resp, err = app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "yes", string(body))

	// check without cookie
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/check", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "no", string(body))

	// logout destroys the stored session
	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sessionCookie)
	_, err = app.Test(req)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/check", nil)
	req.AddCookie(sessionCookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "no", string(body))
}
