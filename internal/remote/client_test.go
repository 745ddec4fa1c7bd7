package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultRemoteBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultRemoteBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_DrivesControlEndpoints(t *testing.T) {
	t.Parallel()

	type call struct {
		method string
		path   string
	}
	var calls []call
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		calls = append(calls, call{r.Method, r.URL.Path})
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/deck" {
			_ = json.NewEncoder(w).Encode(DeckResponse{Title: "T", Slides: []SlideInfo{{ID: "a"}}})
			return
		}
		_ = json.NewEncoder(w).Encode(StateResponse{Index: 4, SlideCount: 9, IsPlaying: true})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	st, err := c.State(ctx)
	if err != nil {
		t.Fatalf("State returned error: %v", err)
	}
	if st.Index != 4 || !st.IsPlaying {
		t.Fatalf("State payload = %#v, want index 4 playing", st)
	}

	d, err := c.Deck(ctx)
	if err != nil {
		t.Fatalf("Deck returned error: %v", err)
	}
	if d.Title != "T" || len(d.Slides) != 1 {
		t.Fatalf("Deck payload = %#v, want 1 slide of T", d)
	}

	if _, err := c.Next(ctx); err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if _, err := c.Previous(ctx); err != nil {
		t.Fatalf("Previous returned error: %v", err)
	}
	if _, err := c.ToggleAutoplay(ctx); err != nil {
		t.Fatalf("ToggleAutoplay returned error: %v", err)
	}
	if _, err := c.GoTo(ctx, 7); err != nil {
		t.Fatalf("GoTo returned error: %v", err)
	}

	want := []call{
		{http.MethodGet, "/api/state"},
		{http.MethodGet, "/api/deck"},
		{http.MethodPost, "/api/next"},
		{http.MethodPost, "/api/previous"},
		{http.MethodPost, "/api/autoplay/toggle"},
		{http.MethodPost, "/api/goto/7"},
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "lantern/") {
		t.Fatalf("User-Agent = %q, want lantern/*", gotUserAgent)
	}
}

func TestClient_GoToRejectsNegativeIndex(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.GoTo(context.Background(), -1); err == nil {
		t.Fatalf("GoTo returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/state":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/api/deck":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.State(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("State error = %v, want decode response error", err)
	}

	_, err = c.Deck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("Deck error = %v, want status 500 error", err)
	}
}
