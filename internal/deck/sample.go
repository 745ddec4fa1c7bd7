package deck

// Sample returns a small starter deck for scaffolding a new presentation
// file.
func Sample() *Deck {
	return &Deck{
		Title: "My presentation",
		Slides: []Slide{
			{
				ID:    "welcome",
				Title: "Welcome",
				Body:  "Arrow keys or h/l move between slides.\nSpace toggles autoplay, ? shows every binding.",
			},
			{
				ID:    "media",
				Title: "Slides can carry images",
				Body:  "Point the image field at a PNG, JPEG or GIF\nrelative to this file.",
			},
			{
				ID:    "links",
				Title: "Slides can carry links",
				Body:  "Press L to show the link as a QR code\nfor the room to follow along.",
				Link:  "https://example.com",
			},
		},
	}
}
