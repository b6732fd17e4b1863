package ui

import "time"

// Console-wide constants to avoid magic strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconError   = "❌"
	IconPackage = "📦"
)

// Text fragments
const (
	IconSeparator = "  "
	ErrorPrefix   = "Error: "
)

// Palette
const (
	ColorInfo    = "#A8DADC"
	ColorWarning = "#FFE66D"
	ColorError   = "#FF6B6B"
	ColorSuccess = "#95E1A3"
	ColorStep    = "#4ECDC4"
)

// Progress bar behavior
const (
	ProgressBarWidth    = 40
	ProgressThrottle    = 65 * time.Millisecond
	ProgressUnknownSize = -1
)
