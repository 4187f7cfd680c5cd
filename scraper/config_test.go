package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewListConfig verifies the press-room defaults
func TestNewListConfig(t *testing.T) {
	config := NewListConfig()

	assert.Equal(t, "ul.press > li:not(.headline)", config.ItemSelector)
	assert.Equal(t, "a", config.AnchorSelector)
	assert.Equal(t, "span.date", config.DateSelector)
	assert.Equal(t, "span.source", config.SourceSelector)
	assert.Equal(t, "January 2, 2006", config.DateLayout)
	assert.Equal(t, "#new_tab", config.LinkMarker)
	assert.Equal(t, "page/%d/", config.PageSegment)
}

// TestMerge_FillsEmpty verifies only empty fields are replaced
func TestMerge_FillsEmpty(t *testing.T) {
	config := &ListConfig{
		ItemSelector: "ol.news > li",
		DateLayout:   "2006-01-02",
	}

	config.Merge(NewListConfig())

	assert.Equal(t, "ol.news > li", config.ItemSelector)
	assert.Equal(t, "2006-01-02", config.DateLayout)
	assert.Equal(t, "a", config.AnchorSelector)
	assert.Equal(t, "span.source", config.SourceSelector)
	assert.Equal(t, "#new_tab", config.LinkMarker)
}
