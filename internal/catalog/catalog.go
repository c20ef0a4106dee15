package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmptyCatalog is returned when a catalog is constructed without items.
var ErrEmptyCatalog = errors.New("catalog must contain at least one item")

// VideoEnd controls what a clip does once it reaches its final frame.
type VideoEnd int

const (
	// VideoEndReset rewinds to the first frame and keeps playing.
	VideoEndReset VideoEnd = iota
	// VideoEndFreeze pauses on the final frame.
	VideoEndFreeze
)

func (v VideoEnd) String() string {
	if v == VideoEndFreeze {
		return "freeze"
	}
	return "reset"
}

// ParseVideoEnd maps the catalog file representation onto a VideoEnd. An
// empty value selects VideoEndReset.
func ParseVideoEnd(s string) (VideoEnd, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reset":
		return VideoEndReset, nil
	case "freeze":
		return VideoEndFreeze, nil
	default:
		return VideoEndReset, fmt.Errorf("unknown video end policy %q", s)
	}
}

// Theme is the colour triple a slide is painted with.
type Theme struct {
	Background string
	Accent     string
	Text       string
}

// Item is a single product shown on the hero slider.
type Item struct {
	ID            int
	DisplayName   string
	BrandName     string
	Description   string
	HighlightText string
	Theme         Theme
	ImageRef      string
	VideoRef      string
	VideoEnd      VideoEnd
}

// HasVideo reports whether the item carries a clip rather than a still image.
func (i Item) HasVideo() bool {
	return i.VideoRef != ""
}

// Label is the human readable name used by pagination and search.
func (i Item) Label() string {
	if i.BrandName == "" {
		return i.DisplayName
	}
	return i.BrandName + " " + i.DisplayName
}

// Catalog is an ordered, immutable, non-empty list of items.
type Catalog struct {
	items []Item
}

// New validates items and returns a catalog holding a private copy of them.
func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	seen := make(map[int]struct{}, len(items))
	for idx, item := range items {
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %d", idx, item.ID)
		}
		seen[item.ID] = struct{}{}
		if strings.TrimSpace(item.DisplayName) == "" {
			return nil, fmt.Errorf("item %d: display name is required", idx)
		}
		if err := validateTheme(item.Theme); err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", idx, item.DisplayName, err)
		}
	}
	return &Catalog{items: append([]Item(nil), items...)}, nil
}

func validateTheme(t Theme) error {
	for _, c := range []struct {
		name  string
		value string
	}{
		{"background", t.Background},
		{"accent", t.Accent},
		{"text", t.Text},
	} {
		if _, err := colorful.Hex(c.value); err != nil {
			return fmt.Errorf("%s colour %q: %w", c.name, c.value, err)
		}
	}
	return nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at index i. Out-of-range indices panic.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Items returns a copy of the catalog contents.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}
