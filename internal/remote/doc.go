// Package remote exposes a running presenter over HTTP and provides the
// matching client.
//
// # Overview
//
// A presentation is driven from the keyboard, but a speaker pacing a room
// wants a clicker. This package turns any HTTP-capable device into one: the
// presenter binds a small JSON API, shows the URL as a QR code, and the
// phone that scans it can page through the deck.
//
// # Architecture
//
// The package is split into three files:
//
//   - server.go: chi router, HTTP lifecycle, and route handlers
//   - client.go: HTTP client implementation used by the CLI remote mode
//   - types.go: Wire structures shared by both sides
//
// # API Endpoints
//
//   - GET  /healthz: Reachability probe
//   - GET  /api/state: Current engine snapshot with deck context
//   - GET  /api/deck: Slide listing including bodies for speaker notes
//   - POST /api/next: Advance one slide
//   - POST /api/previous: Step back one slide
//   - POST /api/autoplay/toggle: Flip the autoplay switch
//   - POST /api/goto/{index}: Jump to a zero-based slide index
//
// Every control route answers with the snapshot taken after the command, so
// remotes never need a second round trip to learn what happened.
//
// # Command Semantics
//
// Commands carry the same semantics as local input. A goto past the end of
// the deck is not an error; the engine ignores it and the response shows
// the unchanged snapshot, exactly as a local key press would behave. Only a
// structurally invalid request, such as a non-numeric index, earns a 400.
//
// # Server Lifecycle
//
// NewServer does not bind. Start claims the listener, logs the bound
// address, and serves in the background; URL reports the resolved address
// afterwards, which is what the QR overlay renders. Shutdown drains
// in-flight requests.
//
// # Client Usage
//
//	client, err := remote.NewClient("127.0.0.1:7910")
//	if err != nil {
//		return err
//	}
//	st, err := client.Next(ctx)
//
// The client accepts "host:port" or full URLs; the scheme defaults to
// http. All requests set Accept and User-Agent headers, run under a
// 5-second timeout, and return wrapped errors naming what failed.
//
// # Network Assumptions
//
// The API is unauthenticated. The default bind is loopback; binding a LAN
// address hands slide control to anyone who can reach the port, which is
// the point of the QR workflow but worth knowing before presenting on
// conference wifi.
package remote
