package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

const postmarkURL = "https://api.postmarkapp.com/email"

type Email struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
}

// PostmarkMailer: 트랜잭션 메일 발송 클라이언트
type PostmarkMailer struct {
	token  string
	from   string
	client *http.Client
}

func NewPostmarkMailer() *PostmarkMailer {
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "no-reply@futurewax.net"
	}

	return &PostmarkMailer{
		token:  os.Getenv("POSTMARK_API_TOKEN"),
		from:   from,
		client: &http.Client{},
	}
}

// Send: 메일 발송
func (m *PostmarkMailer) Send(email Email) error {
	if m.token == "" {
		return fmt.Errorf("postmark api token is not configured")
	}

	if email.From == "" {
		email.From = m.from
	}

	reqBody, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequest("POST", postmarkURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", m.token)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	fmt.Printf("%s mail sent to %s", email.Subject, email.To)
	return nil
}
