package config

// Layout constants.
const (
	// MinColumnWidth is the minimum width for a board column.
	MinColumnWidth = 14

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetTitleWidth is the preferred width for task titles.
	TargetTitleWidth = 30

	// MinTitleWidth is the minimum width for task titles.
	MinTitleWidth = 10
)

// Display limits.
const (
	// MaxVisibleTasks limits cards shown per column before scrolling.
	MaxVisibleTasks = 12

	// MaxVisibleRows limits income/event rows shown before scrolling.
	MaxVisibleRows = 16

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
