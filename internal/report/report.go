// Package report implements the paginated fetch-and-filter loop: it walks the
// portal's report endpoint page by page and keeps every record whose field
// collection length falls inside an inclusive range.
package report

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/maxviazov/portal-tools/internal/fieldpath"
	"github.com/maxviazov/portal-tools/internal/portal"
	"github.com/maxviazov/portal-tools/pkg/progress"
)

// DefaultPageSize is the fixed number of records requested per page.
const DefaultPageSize = 500

// PageFetcher is the one portal operation this package depends on. Tests
// drive the loop with an in-memory fake.
type PageFetcher interface {
	FetchReportPage(ctx context.Context, q portal.ReportQuery) (*portal.Page, error)
}

// Request describes one report run.
type Request struct {
	// Type is the record type to report on.
	Type string
	// Field is the dotted field path. The length filter applies to the
	// path's parent: "files.@id" measures the files collection, a bare
	// "status" measures the status value itself.
	Field string
	// Filter is an extra query expression passed through to the portal.
	Filter string
	// Min and Max are the inclusive length bounds. Max <= 0 means unbounded.
	Min int
	Max int
}

// Match is one record that passed the filter, in the order first seen.
type Match struct {
	ID     string
	Length int
}

// String renders the match the way the report output has always printed it.
func (m Match) String() string {
	return fmt.Sprintf("%s - %d", m.ID, m.Length)
}

// Fetcher runs report requests against a page source. The progress bar's
// lifetime is scoped to a single Run call.
type Fetcher struct {
	pages    PageFetcher
	pageSize int
	bar      progress.Bar
	log      zerolog.Logger
}

// New builds a Fetcher with the default page size.
func New(pages PageFetcher, bar progress.Bar, logg *zerolog.Logger) *Fetcher {
	return &Fetcher{
		pages:    pages,
		pageSize: DefaultPageSize,
		bar:      bar,
		log:      *logg,
	}
}

// Run pages through the report and returns the matches in page-then-record
// order. Requests go out strictly one at a time; the loop ends on the first
// empty page regardless of the reported total. A failed fetch aborts the run
// with the wrapped error — no retry, no partial result.
func (f *Fetcher) Run(ctx context.Context, req Request) ([]Match, error) {
	req = normalize(req)
	parent := fieldpath.Parent(req.Field)

	var matches []Match
	offset := 0
	started := false

	for {
		page, err := f.pages.FetchReportPage(ctx, portal.ReportQuery{
			Type:   req.Type,
			Field:  req.Field,
			Filter: req.Filter,
			Limit:  f.pageSize,
			From:   offset,
		})
		if err != nil {
			return nil, fmt.Errorf("report: page fetch at offset %d: %w", offset, err)
		}
		if len(page.Graph) == 0 {
			break
		}
		if !started {
			f.bar.ChangeMax(page.Total)
			f.log.Debug().Int("total", page.Total).Msg("report total reported")
			started = true
		}

		for _, rec := range page.Graph {
			value, ok := fieldpath.Resolve(rec, parent)
			if !ok {
				continue
			}
			length, ok := lengthOf(value)
			if !ok {
				continue
			}
			if length >= req.Min && length <= req.Max {
				matches = append(matches, Match{ID: rec.ID(), Length: length})
			}
		}

		offset += f.pageSize
		f.bar.Set(offset)
	}

	f.bar.Finish()
	return matches, nil
}

// normalize fills in the open-ended defaults, mirroring how page windows get
// normalized elsewhere: negative minimums clamp to zero, a missing maximum
// means unbounded.
func normalize(r Request) Request {
	if r.Min < 0 {
		r.Min = 0
	}
	if r.Max <= 0 {
		r.Max = math.MaxInt
	}
	return r
}

// lengthOf reports the length of a decoded JSON value. Only arrays and
// strings have one; numbers, booleans, objects and null never match the
// filter.
func lengthOf(v any) (int, bool) {
	switch t := v.(type) {
	case []any:
		return len(t), true
	case string:
		return len(t), true
	default:
		return 0, false
	}
}
