package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconLanguage = "🌐"
	IconBook     = "📖"
	IconAuthor   = "✍"
	IconUsers    = "👥"
	IconDelete   = "🗑"
	IconEdit     = "✎"
	IconDownload = "⬇"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (cards / lists)
const (
	CardMinWidth  float32 = 280
	CardMinHeight float32 = 170

	UserRowNameWidth  float32 = 140
	UserRowEmailWidth float32 = 200

	DetailDialogWidth  float32 = 460
	DetailDialogHeight float32 = 380
	FormDialogWidth    float32 = 420
	FormDialogHeight   float32 = 440
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Debounce durations
const (
	SearchDebounceDelay = 100 * time.Millisecond
)
