package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

type fileColors struct {
	Background string `json:"bg"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
}

type fileItem struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Brand       string     `json:"brand,omitempty"`
	Description string     `json:"description"`
	USP         string     `json:"usp"`
	Colors      fileColors `json:"colors"`
	Image       string     `json:"image"`
	Video       string     `json:"video,omitempty"`
	VideoEnd    string     `json:"videoEndBehavior,omitempty"`
}

// Load reads a JSON catalog file. The file holds an array of items using the
// same keys as the web storefront's product records.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON catalog document.
func Parse(data []byte) (*Catalog, error) {
	var raw []fileItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	items := make([]Item, 0, len(raw))
	for idx, r := range raw {
		end, err := ParseVideoEnd(r.VideoEnd)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", idx, err)
		}
		items = append(items, Item{
			ID:            r.ID,
			DisplayName:   r.Name,
			BrandName:     r.Brand,
			Description:   r.Description,
			HighlightText: r.USP,
			Theme: Theme{
				Background: r.Colors.Background,
				Accent:     r.Colors.Accent,
				Text:       r.Colors.Text,
			},
			ImageRef: r.Image,
			VideoRef: r.Video,
			VideoEnd: end,
		})
	}
	return New(items)
}
