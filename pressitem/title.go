package pressitem

import (
	"regexp"
	"strings"
)

// trailingBracket matches a "[...]" segment at the very end of a title.
var trailingBracket = regexp.MustCompile(`\[([^\[\]]*)\]$`)

// Decomposed is the result of splitting a raw listing title.
type Decomposed struct {
	Title  string
	Source string
}

// Decompose separates a raw listing title into a clean title and a source
// label. Two conventions are recognized, in order:
//
//	"Source | Title"  split at the first pipe, everything after it is the title
//	"Title [Source]"  a bracketed segment anchored at the end of the string
//
// Anything else is returned trimmed with an empty source.
func Decompose(raw string) Decomposed {
	raw = strings.TrimSpace(raw)

	if source, title, ok := strings.Cut(raw, "|"); ok {
		return Decomposed{
			Title:  strings.TrimSpace(title),
			Source: strings.TrimSpace(source),
		}
	}

	if loc := trailingBracket.FindStringSubmatchIndex(raw); loc != nil {
		return Decomposed{
			Title:  strings.TrimSpace(raw[:loc[0]]),
			Source: strings.TrimSpace(raw[loc[2]:loc[3]]),
		}
	}

	return Decomposed{Title: raw}
}

// ResolveSource returns source if it is non-empty, otherwise the trimmed
// fallback. Used after Decompose to fill attribution from secondary markup.
func ResolveSource(source, fallback string) string {
	if source != "" {
		return source
	}
	return strings.TrimSpace(fallback)
}

// CleanLink trims an href and removes every occurrence of marker from it.
// The marker is a literal substring such as "#new_tab", not a parsed
// fragment.
func CleanLink(href, marker string) string {
	href = strings.TrimSpace(href)
	if marker == "" {
		return href
	}
	return strings.ReplaceAll(href, marker, "")
}
