// Package resumesdk implements port.ResumeParser against the third-party
// resume parsing API, which authenticates requests with an HMAC-SHA1
// signature over a GMT date header.
package resumesdk

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"resumehub/internal/config"
	"resumehub/internal/port"
)

type client struct {
	url        string
	secretID   string
	secretKey  string
	needAvatar bool
	httpClient *http.Client
}

// NewClient creates a ResumeParser backed by the configured parsing API.
func NewClient(cfg *config.ParserConfig) port.ResumeParser {
	return &client{
		url:        cfg.URL,
		secretID:   cfg.SecretID,
		secretKey:  cfg.SecretKey,
		needAvatar: cfg.NeedAvatar,
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second},
	}
}

type parseRequest struct {
	FileName   string `json:"file_name"`
	FileCont   string `json:"file_cont"`
	NeedAvatar int    `json:"need_avatar"`
}

// Parse sends the file content to the parsing API and decodes its JSON
// response. API-level failures (non-2xx, undecodable body) are reported
// inside the returned map under "error"; a Go error means the request
// never completed.
func (c *client) Parse(ctx context.Context, fileName string, content []byte) (map[string]any, error) {
	needAvatar := 0
	if c.needAvatar {
		needAvatar = 1
	}
	body, err := json.Marshal(parseRequest{
		FileName:   fileName,
		FileCont:   base64.StdEncoding.EncodeToString(content),
		NeedAvatar: needAvatar,
	})
	if err != nil {
		return nil, fmt.Errorf("resumesdk.Parse marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("resumesdk.Parse request: %w", err)
	}

	date := time.Now().UTC().Format(http.TimeFormat)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Date", date)
	req.Header.Set("Authorization", c.authorization(date))
	req.Header.Set("request-id", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resumesdk.Parse call: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("resumesdk.Parse read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return map[string]any{
			"error":  fmt.Sprintf("HTTP %d", resp.StatusCode),
			"detail": string(raw),
		}, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return map[string]any{
			"error":  "parse json failed",
			"detail": err.Error(),
			"raw":    string(raw),
		}, nil
	}
	return decoded, nil
}

// authorization builds the signed header value: an HMAC-SHA1 signature over
// the canonical "x-date: <GMT date>" string, base64-encoded, wrapped in a
// JSON envelope together with the key id and the date itself.
func (c *client) authorization(date string) string {
	mac := hmac.New(sha1.New, []byte(c.secretKey))
	mac.Write([]byte("x-date: " + date))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	envelope, _ := json.Marshal(map[string]string{
		"id":        c.secretID,
		"x-date":    date,
		"signature": signature,
	})
	return string(envelope)
}
