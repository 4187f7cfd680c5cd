package scraper

import "github.com/pevans/pressroom/pressitem"

// ListConfig defines how records are extracted from one listing page.
type ListConfig struct {
	ItemSelector   string `yaml:"item_selector" json:"item_selector"`
	AnchorSelector string `yaml:"anchor_selector" json:"anchor_selector"`
	DateSelector   string `yaml:"date_selector" json:"date_selector"`
	SourceSelector string `yaml:"source_selector" json:"source_selector"`
	DateLayout     string `yaml:"date_layout" json:"date_layout"` // Go time layout
	LinkMarker     string `yaml:"link_marker" json:"link_marker"`
	PageSegment    string `yaml:"page_segment" json:"page_segment"` // fmt verb for the page number
}

// NewListConfig creates a list configuration matching the press-room
// listing markup.
func NewListConfig() *ListConfig {
	return &ListConfig{
		// The lead "headline" entry duplicates a regular item
		ItemSelector:   "ul.press > li:not(.headline)",
		AnchorSelector: "a",
		DateSelector:   "span.date",
		SourceSelector: "span.source",
		DateLayout:     pressitem.LongDateLayout,
		LinkMarker:     "#new_tab",
		PageSegment:    "page/%d/",
	}
}

// Merge fills every empty field of c from defaults.
func (c *ListConfig) Merge(defaults *ListConfig) {
	if c.ItemSelector == "" {
		c.ItemSelector = defaults.ItemSelector
	}
	if c.AnchorSelector == "" {
		c.AnchorSelector = defaults.AnchorSelector
	}
	if c.DateSelector == "" {
		c.DateSelector = defaults.DateSelector
	}
	if c.SourceSelector == "" {
		c.SourceSelector = defaults.SourceSelector
	}
	if c.DateLayout == "" {
		c.DateLayout = defaults.DateLayout
	}
	if c.LinkMarker == "" {
		c.LinkMarker = defaults.LinkMarker
	}
	if c.PageSegment == "" {
		c.PageSegment = defaults.PageSegment
	}
}
