// Package tui is the full-screen terminal interface.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitual/internal/storage"
)

// Run loads the habits from store and blocks until the user quits.
func Run(store storage.Provider, now func() time.Time) error {
	habitList, err := store.ListHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	p := tea.NewProgram(NewModel(store, habitList, now), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
