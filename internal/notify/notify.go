// Package notify posts new contact messages to an optional webhook so the
// site owner hears about them without polling the inbox.
package notify

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// client has a hard timeout so a slow webhook endpoint can never hold a
// goroutine for long.
var client = &http.Client{Timeout: 10 * time.Second} //nolint:gochecknoglobals

// MessagePayload is the JSON body sent to the webhook.
type MessagePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MessageReceived delivers the payload to the webhook URL in a background
// goroutine. An empty URL disables delivery. Failures are logged and
// otherwise swallowed; notification is best effort and must never change
// the outcome of the request that triggered it.
func MessageReceived(webhookURL string, payload MessagePayload) {
	if webhookURL == "" {
		return
	}

	go func() {
		if err := post(webhookURL, payload); err != nil {
			log.Warn().Err(err).Msg("webhook notification failed")
		}
	}()
}

func post(url string, payload MessagePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return nil
}
