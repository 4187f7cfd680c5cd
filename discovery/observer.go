package discovery

// Observer receives progress events from a Fetcher and from CollectAll.
// Implementations must not block.
type Observer interface {
	// PageFetched reports a listing page that was fetched and extracted.
	PageFetched(url string, count int)
	// PageFailed reports the fetch or extraction error that ended
	// pagination at the given page number.
	PageFailed(url string, page int, err error)
	// RobotsUnavailable reports a robots.txt that could not be loaded; the
	// fetcher continues without restrictions.
	RobotsUnavailable(url string, err error)
	// CollectionDone reports the terminal state of a pagination run.
	CollectionDone(c *Collection)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) PageFetched(string, int) {}
func (NopObserver) PageFailed(string, int, error) {}
func (NopObserver) RobotsUnavailable(string, error) {}
func (NopObserver) CollectionDone(*Collection) {}
