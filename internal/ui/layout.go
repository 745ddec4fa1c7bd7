package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which chrome is pared down:
	// the rail drops its slide titles and the header loses hints.
	LayoutCompactWidth = 72

	// LayoutSplitWidth is the minimum width to place slide art beside the
	// text instead of above it.
	LayoutSplitWidth = 110
)

// Fixed chrome heights, in rows.
const (
	// HeaderRows covers the status bar and the command bar.
	HeaderRows = 2

	// RailRows is the slide rail at the bottom of the screen.
	RailRows = 1
)

// Content limits.
const (
	// StageTextWidth caps body text measure so lines stay readable on
	// ultra-wide terminals.
	StageTextWidth = 80

	// ConsoleRecords is how many journal records the console overlay shows.
	ConsoleRecords = 18
)
