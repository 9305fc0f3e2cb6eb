package tui

import (
	"context"

	"github.com/akyairhashvil/clubkitty/internal/models"
)

// Store defines the persistence methods the TUI requires.
type Store interface {
	Save(ctx context.Context, data models.AppData) error
	SaveAsync(data models.AppData)
}
