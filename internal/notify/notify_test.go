package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageReceived(t *testing.T) {
	received := make(chan MessagePayload, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload MessagePayload
		require.NoError(t, json.Unmarshal(body, &payload))
		received <- payload
	}))
	defer server.Close()

	MessageReceived(server.URL, MessagePayload{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Body:    "Nice site",
	})

	select {
	case payload := <-received:
		assert.Equal(t, "Ada", payload.Name)
		assert.Equal(t, "Hello", payload.Subject)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never called")
	}
}

func TestMessageReceivedEmptyURL(t *testing.T) {
	// must be a no-op, not a panic
	MessageReceived("", MessagePayload{Name: "Ada"})
}
