// Package config holds application constants and the user settings file.
package config

// Database/application settings.
const (
	AppName    = "clubkitty"
	DBFileName = "clubkitty.db"
)

// Input constraints.
const (
	// MaxTitleLength is the maximum task title length.
	MaxTitleLength = 100

	// MaxDescriptionLength is the maximum task description length.
	MaxDescriptionLength = 500

	// MaxNoteLength is the maximum event note length.
	MaxNoteLength = 500
)

// Report settings.
const (
	// ReportFontURL is fetched once and cached; PDF export falls back to the
	// built-in core font when the fetch fails.
	ReportFontURL = "https://github.com/dejavu-fonts/dejavu-fonts/raw/master/ttf/DejaVuSans.ttf"

	// ReportFontFile is the cached font filename under the data dir.
	ReportFontFile = "DejaVuSans.ttf"
)

// Assist (budget-text extraction) settings.
const (
	// AssistAPIKeyEnv names the environment variable holding the
	// classification service credential. Absence disables the feature.
	AssistAPIKeyEnv = "CLUBKITTY_ASSIST_KEY"
)
