package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pevans/pressroom/pressitem"
	"github.com/pevans/pressroom/scraper"
	"github.com/temoto/robotstxt"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// Custom errors for page fetches
var (
	ErrMissingAnchor    = errors.New("list item has no anchor with an href")
	ErrDisallowed       = errors.New("disallowed by robots.txt")
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)

// DefaultUserAgent identifies pressroom to the listing site.
const DefaultUserAgent = "pressroom/1.0 (press release listing exporter)"

// FetchError describes a failed listing page request: transport, HTTP
// status, HTML parsing, or a robots.txt refusal.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FetcherConfig holds configuration for a Fetcher.
type FetcherConfig struct {
	// Timeout per page request
	Timeout time.Duration
	// User-Agent header sent with every request
	UserAgent string
	// Minimum delay between consecutive requests; zero disables it
	RateInterval time.Duration
	// Load robots.txt before the first page and refuse disallowed paths
	RespectRobots bool
	// Selector rule set for listing pages
	List *scraper.ListConfig
}

// DefaultFetcherConfig returns the configuration used when none is given.
func DefaultFetcherConfig() *FetcherConfig {
	return &FetcherConfig{
		Timeout:   10 * time.Second,
		UserAgent: DefaultUserAgent,
		List:      scraper.NewListConfig(),
	}
}

// Fetcher retrieves listing pages and extracts their records.
type Fetcher struct {
	config   *FetcherConfig
	client   *http.Client
	limiter  *rate.Limiter
	observer Observer

	robotsLoaded bool
	robots       *robotstxt.Group
}

// NewFetcher creates a fetcher. A nil config uses DefaultFetcherConfig and a
// nil observer discards events.
func NewFetcher(config *FetcherConfig, observer Observer) *Fetcher {
	if config == nil {
		config = DefaultFetcherConfig()
	}
	if config.List == nil {
		config.List = scraper.NewListConfig()
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if observer == nil {
		observer = NopObserver{}
	}

	f := &Fetcher{
		config:   config,
		client:   &http.Client{Timeout: config.Timeout},
		observer: observer,
	}
	if config.RateInterval > 0 {
		f.limiter = rate.NewLimiter(rate.Every(config.RateInterval), 1)
	}

	return f
}

// FetchPage fetches one listing page and returns its records in document
// order. An empty result is not an error.
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) ([]pressitem.Record, error) {
	if f.config.RespectRobots {
		if err := f.checkRobots(ctx, pageURL); err != nil {
			return nil, &FetchError{URL: pageURL, Err: err}
		}
	}

	doc, err := f.FetchHTML(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	records, err := ExtractRecords(doc, f.config.List)
	if err != nil {
		return nil, fmt.Errorf("failed to extract records from %s: %w", pageURL, err)
	}

	f.observer.PageFetched(pageURL, len(records))
	return records, nil
}

// FetchHTML fetches HTML content from the given URL and parses it. The body
// is decoded to UTF-8 according to its declared charset.
func (f *Fetcher) FetchHTML(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, &FetchError{URL: pageURL, Err: err}
		}
	}

	resp, err := f.get(ctx, pageURL)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			URL: pageURL,
			Err: fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status),
		}
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("failed to decode body: %w", err)}
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("failed to parse HTML: %w", err)}
	}

	return doc, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	return resp, nil
}

// checkRobots loads robots.txt for the page's host on first use and tests
// the page path against the group for our user agent.
func (f *Fetcher) checkRobots(ctx context.Context, pageURL string) error {
	u, err := url.Parse(pageURL)
	if err != nil {
		return fmt.Errorf("invalid page URL: %w", err)
	}

	if !f.robotsLoaded {
		f.robotsLoaded = true
		robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)

		group, err := f.loadRobots(ctx, robotsURL)
		if err != nil {
			f.observer.RobotsUnavailable(robotsURL, err)
		}
		f.robots = group
	}

	if f.robots == nil {
		return nil
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if !f.robots.Test(path) {
		return fmt.Errorf("%w: %s", ErrDisallowed, path)
	}
	return nil
}

func (f *Fetcher) loadRobots(ctx context.Context, robotsURL string) (*robotstxt.Group, error) {
	resp, err := f.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse robots.txt: %w", err)
	}

	return data.FindGroup(f.config.UserAgent), nil
}

// ExtractRecords extracts one record per listing item selected by
// config.ItemSelector. A missing anchor or an unparseable date fails the
// whole page.
func ExtractRecords(doc *goquery.Document, config *scraper.ListConfig) ([]pressitem.Record, error) {
	records := []pressitem.Record{}

	var extractErr error
	doc.Find(config.ItemSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		record, err := extractRecord(s, config)
		if err != nil {
			extractErr = fmt.Errorf("item %d: %w", i, err)
			return false
		}
		records = append(records, record)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return records, nil
}

func extractRecord(s *goquery.Selection, config *scraper.ListConfig) (pressitem.Record, error) {
	anchor := s.Find(config.AnchorSelector).First()
	href, ok := anchor.Attr("href")
	if !ok {
		return pressitem.Record{}, ErrMissingAnchor
	}

	parts := pressitem.Decompose(strings.TrimSpace(anchor.Text()))

	date, err := pressitem.NormalizeDate(s.Find(config.DateSelector).Text(), config.DateLayout)
	if err != nil {
		return pressitem.Record{}, err
	}

	// Attribution markup is only consulted when the title carried none
	source := pressitem.ResolveSource(parts.Source, s.Find(config.SourceSelector).Text())

	return pressitem.Record{
		Title:  parts.Title,
		Link:   pressitem.CleanLink(href, config.LinkMarker),
		Date:   date,
		Source: source,
	}, nil
}
