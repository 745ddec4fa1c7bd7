package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
)

// Slide is one unit of deck content. The engine never looks inside; only
// the count and the stable ID matter to navigation.
type Slide struct {
	ID    string `yaml:"id,omitempty"`
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
	Image string `yaml:"image,omitempty"`
	Link  string `yaml:"link,omitempty"`
}

// Deck is an ordered slide collection loaded from a YAML manifest.
type Deck struct {
	Title  string  `yaml:"title"`
	Author string  `yaml:"author,omitempty"`
	Slides []Slide `yaml:"slides"`

	// Dir is the manifest's directory; relative image paths resolve
	// against it. Not part of the manifest.
	Dir string `yaml:"-"`
}

// Len returns the slide count.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// Slide returns the slide at index, or a zero Slide when out of range.
func (d *Deck) Slide(index int) Slide {
	if d == nil || index < 0 || index >= len(d.Slides) {
		return Slide{}
	}
	return d.Slides[index]
}

// ImagePath resolves the image path of the slide at index against the
// manifest directory. Empty when the slide has no image.
func (d *Deck) ImagePath(index int) string {
	s := d.Slide(index)
	if s.Image == "" {
		return ""
	}
	if filepath.IsAbs(s.Image) {
		return s.Image
	}
	return filepath.Join(d.Dir, s.Image)
}

// idGen produces slide ids; tests pin it for stable output.
var idGen = func() string { return ulid.Make().String() }

// Load reads and validates a deck manifest. Slides without an id get a
// generated one; duplicate ids are rejected. A manifest with zero slides
// is valid and simply yields an inert show.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}

	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse deck %s: %w", path, err)
	}
	d.Dir = filepath.Dir(path)

	if strings.TrimSpace(d.Title) == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	seen := make(map[string]int, len(d.Slides))
	for i := range d.Slides {
		s := &d.Slides[i]
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" {
			s.ID = idGen()
		}
		if prev, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("deck %s: slides %d and %d share id %q", path, prev, i, s.ID)
		}
		seen[s.ID] = i
		if strings.TrimSpace(s.Title) == "" {
			s.Title = fmt.Sprintf("Slide %d", i+1)
		}
	}
	return &d, nil
}

// Write marshals a deck to path. Used by deck scaffolding; presenting
// never writes manifests back.
func Write(d *Deck, path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	return nil
}
