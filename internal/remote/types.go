package remote

import (
	"github.com/chanderbhanswami/lantern/internal/deck"
	"github.com/chanderbhanswami/lantern/internal/engine"
)

// StateResponse mirrors the payload returned by /api/state. Every control
// route answers with one so a remote always acts on a fresh snapshot.
type StateResponse struct {
	Index         int     `json:"index"`
	SlideCount    int     `json:"slideCount"`
	Direction     string  `json:"direction"`
	IsPlaying     bool    `json:"isPlaying"`
	IsSuspended   bool    `json:"isSuspended"`
	IsFullscreen  bool    `json:"isFullscreen"`
	Progress      float64 `json:"progress"`
	Loop          bool    `json:"loop"`
	CanGoNext     bool    `json:"canGoNext"`
	CanGoPrevious bool    `json:"canGoPrevious"`
	SlideID       string  `json:"slideId"`
	Title         string  `json:"title"`
}

// DeckResponse mirrors /api/deck. Bodies ride along so a phone remote can
// show speaker notes for the current slide.
type DeckResponse struct {
	Title  string      `json:"title"`
	Author string      `json:"author"`
	Slides []SlideInfo `json:"slides"`
}

// SlideInfo describes one slide in transport-friendly form.
type SlideInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	HasImage bool   `json:"hasImage"`
	Link     string `json:"link"`
}

// NewStateResponse flattens an engine snapshot and its deck context into the
// wire form.
func NewStateResponse(st engine.State, d *deck.Deck) StateResponse {
	resp := StateResponse{
		Index:         st.Index,
		SlideCount:    st.SlideCount,
		Direction:     st.Direction.String(),
		IsPlaying:     st.IsPlaying,
		IsSuspended:   st.IsSuspended,
		IsFullscreen:  st.IsFullscreen,
		Progress:      st.Progress,
		Loop:          st.Loop,
		CanGoNext:     st.CanGoNext(),
		CanGoPrevious: st.CanGoPrevious(),
	}
	if d != nil && st.Index >= 0 && st.Index < d.Len() {
		slide := d.Slide(st.Index)
		resp.SlideID = slide.ID
		resp.Title = slide.Title
	}
	return resp
}

// NewDeckResponse flattens a deck into the wire form.
func NewDeckResponse(d *deck.Deck) DeckResponse {
	resp := DeckResponse{}
	if d == nil {
		return resp
	}
	resp.Title = d.Title
	resp.Author = d.Author
	resp.Slides = make([]SlideInfo, 0, d.Len())
	for _, s := range d.Slides {
		resp.Slides = append(resp.Slides, SlideInfo{
			ID:       s.ID,
			Title:    s.Title,
			Body:     s.Body,
			HasImage: s.Image != "",
			Link:     s.Link,
		})
	}
	return resp
}
