// Package pressroom collects a paginated press-release listing and exports
// it as a delimited file.
package pressroom

import (
	"context"
	"time"

	"github.com/pevans/pressroom/discovery"
	"github.com/pevans/pressroom/history"
	"github.com/pevans/pressroom/pressitem"
)

// Writer consumes the full set of collected records once.
type Writer interface {
	Write(records []pressitem.Record) error
	Path() string
}

// RunStore persists run summaries. *history.Store implements it.
type RunStore interface {
	RecordRun(ctx context.Context, run *history.Run) error
}

// Observer receives every event of a pipeline run.
type Observer interface {
	discovery.Observer
	// NoData reports a run that collected no records; nothing is written.
	NoData(baseURL string)
	// HistoryFailed reports a run summary that could not be stored.
	HistoryFailed(err error)
}

// Pipeline runs the collect-then-write sequence against one listing.
type Pipeline struct {
	BaseURL     string
	PageSegment string
	Fetcher     discovery.PageFetcher
	Writer      Writer
	Observer    Observer
	// History is optional
	History RunStore
}

// Result describes a finished pipeline run.
type Result struct {
	Collection *discovery.Collection
	// Written is true when the writer was invoked and succeeded
	Written  bool
	WriteErr error
	Run      *history.Run
}

// Run collects every page, writes the records if there are any, and
// records a run summary when a history store is configured. Failures are
// reported to the observer and in the Result; Run itself never fails.
func (p *Pipeline) Run(ctx context.Context) *Result {
	run := history.NewRun(p.BaseURL)

	collection := discovery.CollectAll(ctx, p.Fetcher, p.BaseURL, p.PageSegment, p.Observer)
	result := &Result{Collection: collection, Run: run}

	if len(collection.Records) > 0 {
		// The writer reports its own outcome to the observer
		result.WriteErr = p.Writer.Write(collection.Records)
		result.Written = result.WriteErr == nil
	} else {
		p.Observer.NoData(p.BaseURL)
	}

	run.FinishedAt = time.Now().UTC()
	run.Pages = collection.Pages
	run.Records = len(collection.Records)
	run.StopReason = collection.Reason.String()
	if collection.Err != nil {
		msg := collection.Err.Error()
		run.LastError = &msg
	}
	if result.WriteErr != nil {
		msg := result.WriteErr.Error()
		run.LastError = &msg
	}
	if result.Written {
		path := p.Writer.Path()
		run.OutputPath = &path
	}

	if p.History != nil {
		if err := p.History.RecordRun(ctx, run); err != nil {
			p.Observer.HistoryFailed(err)
		}
	}

	return result
}
