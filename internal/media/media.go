package media

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

// Decoded images are scaled into this pixel box before caching. One
// terminal cell shows two vertical pixels, so the box is twice as tall in
// pixels as the widest stage is in rows.
const (
	maxSourceWidth  = 160
	maxSourceHeight = 96
)

// Art is one decoded, pre-scaled slide image. Render draws it as
// upper-halfblock cells, two pixel rows per terminal row.
type Art struct {
	src *image.RGBA

	mu       sync.Mutex
	lastW    int
	lastH    int
	rendered string
}

// Render returns the image as styled halfblock lines fitting within maxW
// columns and maxH rows, preserving aspect. The last render is memoized so
// a steady layout costs one scale per size change, not per frame.
func (a *Art) Render(maxW, maxH int) string {
	if a == nil || maxW <= 0 || maxH <= 0 {
		return ""
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.lastW == maxW && a.lastH == maxH && a.rendered != "" {
		return a.rendered
	}

	fit := scaleToFit(a.src, maxW, 2*maxH)
	bounds := fit.Bounds()
	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			b.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := fit.RGBAAt(x, y)
			bottom := top
			if y+1 < bounds.Max.Y {
				bottom = fit.RGBAAt(x, y+1)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))).
				Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bottom.R, bottom.G, bottom.B)))
			b.WriteString(style.Render("▀"))
		}
	}
	a.lastW, a.lastH = maxW, maxH
	a.rendered = b.String()
	return a.rendered
}

// Size returns the rendered cell dimensions for a given box.
func (a *Art) Size(maxW, maxH int) (w, h int) {
	if a == nil || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	pw, ph := fitBox(a.src.Bounds().Dx(), a.src.Bounds().Dy(), maxW, 2*maxH)
	return pw, (ph + 1) / 2
}

func scaleToFit(src *image.RGBA, maxW, maxHPx int) *image.RGBA {
	w, h := fitBox(src.Bounds().Dx(), src.Bounds().Dy(), maxW, maxHPx)
	if w == src.Bounds().Dx() && h == src.Bounds().Dy() {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// fitBox shrinks (srcW, srcH) to fit (maxW, maxH) preserving aspect. It
// never enlarges.
func fitBox(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 1
	}
	w, h := srcW, srcH
	if w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if h > maxH {
		w = w * maxH / h
		h = maxH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

type entry struct {
	once sync.Once
	art  *Art
	err  error
}

// Loader decodes and caches slide images. Each path is decoded at most
// once per session; concurrent loads of the same path share one decode.
type Loader struct {
	mu    sync.Mutex
	cache map[string]*entry
}

// NewLoader builds an empty loader.
func NewLoader() *Loader {
	return &Loader{cache: make(map[string]*entry)}
}

// Load returns the cached art for path, decoding on first use. PNG, JPEG
// and GIF are supported.
func (l *Loader) Load(ctx context.Context, path string) (*Art, error) {
	if path == "" {
		return nil, fmt.Errorf("empty media path")
	}
	// Refuse before touching the cache so a canceled warm never poisons
	// the entry for later loads.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	e, ok := l.cache[path]
	if !ok {
		e = &entry{}
		l.cache[path] = e
	}
	l.mu.Unlock()

	e.once.Do(func() {
		e.art, e.err = decode(path)
	})
	return e.art, e.err
}

func decode(path string) (*Art, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open media: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode media %s: %w", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	xdraw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return &Art{src: scaleToFit(rgba, maxSourceWidth, maxSourceHeight)}, nil
}
