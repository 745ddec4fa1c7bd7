package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Controller drives a running presenter. *Client implements it against
// the HTTP API; tests can substitute their own.
type Controller interface {
	State(ctx context.Context) (*StateResponse, error)
	Deck(ctx context.Context) (*DeckResponse, error)
	Next(ctx context.Context) (*StateResponse, error)
	Previous(ctx context.Context) (*StateResponse, error)
	ToggleAutoplay(ctx context.Context) (*StateResponse, error)
	GoTo(ctx context.Context, index int) (*StateResponse, error)
}

// Ensure Client implements Controller at compile time.
var _ Controller = (*Client)(nil)

// Client talks to a presenter's remote control HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultRemoteBind = "127.0.0.1:7910"
	defaultUserAgent  = "lantern/0.1"
	requestTimeout    = 5 * time.Second
)

// NewClient builds a Client using the provided bind host:port value.
func NewClient(bind string) (*Client, error) {
	base, err := parseBaseURL(bind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// State retrieves the current engine snapshot.
func (c *Client) State(ctx context.Context) (*StateResponse, error) {
	return c.state(ctx, http.MethodGet, "/api/state")
}

// Deck retrieves the loaded deck's slide listing.
func (c *Client) Deck(ctx context.Context) (*DeckResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload DeckResponse
	if err := c.do(ctx, http.MethodGet, "/api/deck", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Next advances the presenter one slide.
func (c *Client) Next(ctx context.Context) (*StateResponse, error) {
	return c.state(ctx, http.MethodPost, "/api/next")
}

// Previous steps the presenter back one slide.
func (c *Client) Previous(ctx context.Context) (*StateResponse, error) {
	return c.state(ctx, http.MethodPost, "/api/previous")
}

// ToggleAutoplay flips the presenter's autoplay switch.
func (c *Client) ToggleAutoplay(ctx context.Context) (*StateResponse, error) {
	return c.state(ctx, http.MethodPost, "/api/autoplay/toggle")
}

// GoTo jumps the presenter to the given slide index.
func (c *Client) GoTo(ctx context.Context, index int) (*StateResponse, error) {
	if index < 0 {
		return nil, fmt.Errorf("index must not be negative")
	}
	return c.state(ctx, http.MethodPost, fmt.Sprintf("/api/goto/%d", index))
}

func (c *Client) state(ctx context.Context, method, path string) (*StateResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload StateResponse
	if err := c.do(ctx, method, path, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	target := *c.baseURL
	target.Path = path

	req, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call presenter: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("presenter %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

// parseBaseURL turns a host:port bind value into the scheme-qualified base
// every request path is appended to. Anything past the host is dropped.
func parseBaseURL(bind string) (*url.URL, error) {
	addr := strings.TrimSpace(bind)
	switch {
	case addr == "":
		addr = "http://" + defaultRemoteBind
	case !strings.Contains(addr, "://"):
		addr = "http://" + addr
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("parse remote bind %q: %w", bind, err)
	}
	u.Path, u.RawQuery, u.Fragment = "", "", ""
	return u, nil
}
