package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which card tags are hidden.
	LayoutCompactWidth = 80
)

// Fixed chrome sizes.
const (
	headerLines = 2
	footerLines = 1

	// cardLines is the height of one card including its spacer line.
	cardLines = 4

	helpWidth = 48

	detailMaxWidth = 76
	detailMargin   = 4
)

// Timing constants.
const (
	// ToastDuration is how long a status message stays in the footer.
	ToastDuration = 2200 * time.Millisecond
)
