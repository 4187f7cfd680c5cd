package discovery

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pevans/pressroom/pressitem"
)

// PageFetcher fetches a single listing page. *Fetcher implements it.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) ([]pressitem.Record, error)
}

// StopReason is the terminal state of a pagination run.
type StopReason int

const (
	// StopEmptyPage means a page returned no records (normal completion).
	StopEmptyPage StopReason = iota
	// StopFetchError means a page could not be fetched or extracted. The
	// records gathered before it are kept.
	StopFetchError
)

func (r StopReason) String() string {
	switch r {
	case StopEmptyPage:
		return "empty_page"
	case StopFetchError:
		return "fetch_error"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Collection is the result of walking a paginated listing.
type Collection struct {
	Records []pressitem.Record
	// Pages is the number of pages that returned records
	Pages  int
	Reason StopReason
	// Err is the error that ended pagination when Reason is StopFetchError
	Err error
}

// withPage returns a copy of c with records appended as the next page.
func (c Collection) withPage(records []pressitem.Record) Collection {
	c.Records = slices.Concat(c.Records, records)
	c.Pages++
	return c
}

// PageURL builds the URL of page n of a listing. Page 1 is baseURL itself;
// later pages append segment (a format string taking the page number).
func PageURL(baseURL, segment string, n int) string {
	if n <= 1 {
		return baseURL
	}
	if segment == "" {
		segment = "page/%d/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + fmt.Sprintf(segment, n)
}

// CollectAll fetches pages 1, 2, ... in order until a page returns no
// records or fails. Failures are reported to observer and recorded in the
// returned Collection; they are never returned as an error.
func CollectAll(ctx context.Context, fetcher PageFetcher, baseURL, segment string, observer Observer) *Collection {
	if observer == nil {
		observer = NopObserver{}
	}

	var collected Collection
	for page := 1; ; page++ {
		pageURL := PageURL(baseURL, segment, page)

		records, err := fetcher.FetchPage(ctx, pageURL)
		if err != nil {
			observer.PageFailed(pageURL, page, err)
			collected.Reason = StopFetchError
			collected.Err = err
			break
		}
		if len(records) == 0 {
			collected.Reason = StopEmptyPage
			break
		}

		collected = collected.withPage(records)
	}

	observer.CollectionDone(&collected)
	return &collected
}
