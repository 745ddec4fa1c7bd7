package ui

import "strings"

// truncate caps value at limit runes, marking the cut with three dots.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	r := []rune(value)
	if limit <= 0 || len(r) <= limit {
		return value
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}

// truncateMiddle caps value at limit runes by cutting from the middle, so
// both ends stay readable. Path-looking values keep their trailing
// extension; a link or image path stays recognizable at a glance.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	r := []rune(value)
	if limit <= 0 || len(r) <= limit {
		return value
	}
	if limit <= 3 {
		return string(r[:limit])
	}

	if base, ext, ok := splitPathExt(value); ok {
		extLen := len([]rune(ext))
		keep := limit - extLen - 1
		br := []rune(base)
		if extLen < limit/2 && keep > 0 && len(br) > keep {
			return cutMiddle(br, keep) + ext
		}
	}

	return cutMiddle(r, limit-1)
}

// cutMiddle keeps keep runes of r, half from each end, joined by one
// ellipsis rune.
func cutMiddle(r []rune, keep int) string {
	head := keep / 2
	tail := keep - head
	return string(r[:head]) + "…" + string(r[len(r)-tail:])
}

// splitPathExt splits a path-looking value into base and a short trailing
// extension. ok is false when value is not a path, has no extension after
// its last separator, or the extension is too long to be worth keeping.
func splitPathExt(value string) (base, ext string, ok bool) {
	slash := max(strings.LastIndex(value, "/"), strings.LastIndex(value, "\\"))
	if slash < 0 {
		return "", "", false
	}
	dot := strings.LastIndex(value, ".")
	if dot <= slash {
		return "", "", false
	}
	ext = value[dot:]
	if len([]rune(ext)) >= 10 {
		return "", "", false
	}
	return value[:dot], ext, true
}

// titleCase renders an identifier-style value ("focus_lost") as label text
// ("Focus Lost").
func titleCase(value string) string {
	words := strings.Split(strings.TrimSpace(value), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		w = strings.ToLower(w)
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// padRight pads s with spaces out to width rune columns. Never trims.
func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
