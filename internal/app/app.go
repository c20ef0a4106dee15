package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/hero-slider/internal/catalog"
	"github.com/atomicstack/hero-slider/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath    string
	Width          int
	Height         int
	Cooldown       time.Duration
	WheelThreshold float64
	WheelStep      float64
	SwipeThreshold float64
	DragScale      float64
	ShowFooter     bool
}

// LoadCatalog returns the configured catalog, or the built-in one when no
// path is set.
func LoadCatalog(cfg Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.CatalogPath, err)
	}
	return c, nil
}

// NewModel builds the slider model for cfg.
func NewModel(cfg Config) (*ui.Model, error) {
	c, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	return ui.NewModel(c, ui.Options{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Cooldown:       cfg.Cooldown,
		WheelThreshold: cfg.WheelThreshold,
		WheelStep:      cfg.WheelStep,
		SwipeThreshold: cfg.SwipeThreshold,
		DragScale:      cfg.DragScale,
		ShowFooter:     cfg.ShowFooter,
	})
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	// Bubble Tea restores the terminal on shutdown; Unmount detaches the model
	// on every exit path, including a killed program.
	defer model.Unmount()
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
