package logger

import (
	"github.com/pevans/pressroom/discovery"
	"github.com/rs/zerolog"
)

// Observer turns discovery and export events into log lines.
type Observer struct {
	log zerolog.Logger
}

// NewObserver creates an observer that logs through l.
func NewObserver(l zerolog.Logger) *Observer {
	return &Observer{log: l}
}

func (o *Observer) PageFetched(url string, count int) {
	o.log.Info().Int("items", count).Str("url", url).Msg("Fetched listing page")
}

func (o *Observer) PageFailed(url string, page int, err error) {
	o.log.Error().Err(err).Int("page", page).Str("url", url).Msg("Error fetching data, stopping pagination")
}

func (o *Observer) RobotsUnavailable(url string, err error) {
	o.log.Warn().Err(err).Str("url", url).Msg("robots.txt unavailable, continuing without it")
}

func (o *Observer) CollectionDone(c *discovery.Collection) {
	o.log.Info().
		Int("pages", c.Pages).
		Int("records", len(c.Records)).
		Stringer("reason", c.Reason).
		Msg("Pagination finished")
}

func (o *Observer) Written(path string, count int) {
	o.log.Info().Int("records", count).Str("path", path).Msg("CSV file has been written successfully")
}

func (o *Observer) WriteFailed(path string, err error) {
	o.log.Error().Err(err).Str("path", path).Msg("Error writing CSV")
}

// NoData reports a run that collected nothing to write.
func (o *Observer) NoData(baseURL string) {
	o.log.Warn().Str("url", baseURL).Msg("No data fetched")
}

// HistoryFailed reports a run summary that could not be stored.
func (o *Observer) HistoryFailed(err error) {
	o.log.Warn().Err(err).Msg("Failed to record run history")
}
