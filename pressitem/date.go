package pressitem

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LongDateLayout is the listing's "January 2, 2006" date style.
	LongDateLayout = "January 2, 2006"

	// ISODateLayout is the output date format.
	ISODateLayout = "2006-01-02"
)

// DateParseError reports listing date text that does not match the
// expected layout.
type DateParseError struct {
	Text   string
	Layout string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("cannot parse date %q with layout %q: %v", e.Text, e.Layout, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// NormalizeDate parses text with layout and renders it as an ISO 8601
// calendar date. An empty layout means LongDateLayout.
func NormalizeDate(text, layout string) (string, error) {
	if layout == "" {
		layout = LongDateLayout
	}

	text = strings.TrimSpace(text)
	t, err := time.Parse(layout, text)
	if err != nil {
		return "", &DateParseError{Text: text, Layout: layout, Err: err}
	}

	return t.Format(ISODateLayout), nil
}
