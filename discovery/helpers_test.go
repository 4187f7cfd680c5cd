package discovery

import (
	"fmt"
	"strings"
	"sync"
)

// recordingObserver captures events for assertions
type recordingObserver struct {
	mu      sync.Mutex
	fetched []string
	failed  []string
	robots  []string
	done    []*Collection
}

func (o *recordingObserver) PageFetched(url string, count int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fetched = append(o.fetched, fmt.Sprintf("%s=%d", url, count))
}

func (o *recordingObserver) PageFailed(url string, page int, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed = append(o.failed, fmt.Sprintf("%d:%s", page, url))
}

func (o *recordingObserver) RobotsUnavailable(url string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.robots = append(o.robots, url)
}

func (o *recordingObserver) CollectionDone(c *Collection) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.done = append(o.done, c)
}

type fixtureItem struct {
	Class  string
	Href   string
	Title  string
	Date   string
	Source string
}

// listingHTML renders a press listing page in the site's markup
func listingHTML(items ...fixtureItem) string {
	var b strings.Builder
	b.WriteString("<html><body><ul class=\"press\">\n")
	for _, item := range items {
		fmt.Fprintf(&b, "<li class=%q><a href=%q>%s</a><span class=\"date\">%s</span>", item.Class, item.Href, item.Title, item.Date)
		if item.Source != "" {
			fmt.Fprintf(&b, "<span class=\"source\">%s</span>", item.Source)
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul></body></html>")
	return b.String()
}
