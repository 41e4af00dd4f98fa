package recordify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Backend defines the three calls the control panel makes against the
// recordify backend. This interface is implemented by *Client and can be
// used for testing.
type Backend interface {
	SaveTag(ctx context.Context, uid, trackRef string) error
	PlayTag(ctx context.Context, uid string) error
	NowPlaying(ctx context.Context) (*NowPlaying, error)
}

// Ensure Client implements Backend at compile time.
var _ Backend = (*Client)(nil)

// Client talks to the recordify HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	newID     func() string
}

const (
	// DefaultAPIBase is the backend address used when none is configured.
	DefaultAPIBase   = "http://localhost:8000"
	defaultUserAgent = "recordify/0.1"
	maxErrorBody     = 4 << 10
)

// NewClient builds a Client for apiBase. A zero timeout leaves requests
// bounded only by their context.
func NewClient(apiBase string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		newID:     func() string { return uuid.New().String() },
	}, nil
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// SaveTag stores trackRef under uid.
func (c *Client) SaveTag(ctx context.Context, uid, trackRef string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if err := ValidateSave(uid, trackRef); err != nil {
		return err
	}
	body, err := json.Marshal(saveTagRequest{SpotifyURI: trackRef})
	if err != nil {
		return fmt.Errorf("encode save request: %w", err)
	}
	return c.do(ctx, "save tag", http.MethodPost, "/api/tags/"+uid, body, nil)
}

// PlayTag asks the backend to start playback of the track stored under uid.
func (c *Client) PlayTag(ctx context.Context, uid string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if err := ValidatePlay(uid); err != nil {
		return err
	}
	return c.do(ctx, "play tag", http.MethodPost, "/api/play/"+uid, nil, nil)
}

// NowPlaying retrieves the current playback snapshot.
func (c *Client) NowPlaying(ctx context.Context) (*NowPlaying, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload NowPlaying
	if err := c.do(ctx, "now playing", http.MethodGet, "/api/now_playing", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// do issues a request against the backend. path is set as url.URL.Path, so
// reserved characters in the uid segment ('?', '#', '%', spaces) are
// percent-encoded and stay part of the path.
func (c *Client) do(ctx context.Context, op, method, path string, body []byte, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	requestID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: execute request %s: %w", op, requestID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Op:        op,
			Path:      rel.String(),
			Code:      resp.StatusCode,
			Body:      string(detail),
			RequestID: requestID,
		}
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = DefaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", apiBase, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", apiBase)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
