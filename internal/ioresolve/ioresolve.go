// Package ioresolve runs batch resolution of an address file and writes
// the resolved and needs-review streams.
package ioresolve

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/cogpn/cogpn/internal/ioinput"
	"github.com/cogpn/cogpn/internal/iomodel"
	"github.com/cogpn/cogpn/internal/iotsv"
	"github.com/cogpn/cogpn/pkg/address"
	"github.com/cogpn/cogpn/pkg/config"
	"github.com/cogpn/cogpn/pkg/lifecycle"
	"github.com/cogpn/cogpn/pkg/resolver"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"golang.org/x/sync/errgroup"
)

type annotator struct {
	cfg *config.Config

	// quiet disables the progress bar and the single-row report.
	quiet bool
}

// New creates a lifecycle.Annotator.
func New(cfg *config.Config) lifecycle.Annotator {
	return &annotator{cfg: cfg}
}

// Summary counts resolution outcomes of one run.
type Summary struct {
	Addresses   int
	Duplicates  int
	NoPostcode  int
	Resolved    int
	NeedsReview int

	ByState  map[resolver.State]int
	ByMethod map[resolver.Method]int
}

func newSummary() *Summary {
	return &Summary{
		ByState:  make(map[resolver.State]int),
		ByMethod: make(map[resolver.Method]int),
	}
}

func (s *Summary) add(r resolver.Result) {
	s.ByState[r.State]++
	if r.Stream == resolver.Resolved {
		s.Resolved++
		s.ByMethod[r.Method]++
		return
	}
	s.NeedsReview++
}

// Annotate resolves every address of the file at path. Results keep the
// input order in both streams.
func (a *annotator) Annotate(ctx context.Context, path string) error {
	start := time.Now()
	sum, err := a.annotate(ctx, path)
	if err != nil {
		return err
	}
	a.report(sum, time.Since(start))
	return nil
}

func (a *annotator) annotate(ctx context.Context, path string) (*Summary, error) {
	slog.Info("Starting resolution",
		"addresses", path,
		"model", a.cfg.Files.Model,
		"jobs", a.cfg.JobsNumber,
	)

	in, err := ioinput.Load(a.cfg)
	if err != nil {
		return nil, err
	}

	m, err := iomodel.Load(a.cfg.Files.Model)
	if err != nil {
		return nil, err
	}

	r := resolver.New(
		in.Hierarchy, m, in.Normalizer(m.DashedTerms()...), a.cfg.Model.MetroTerm,
	)

	addrs, err := iotsv.ReadAddresses(path)
	if err != nil {
		return nil, err
	}

	recs := addrs.Records
	sum := newSummary()
	if row := a.cfg.Output.Row; row > 0 {
		recs, err = selectRow(recs, row)
		if err != nil {
			return nil, err
		}
	} else {
		recs, sum.Duplicates = address.Dedup(recs)
		if sum.Duplicates > 0 {
			slog.Warn("Repeated address_row_id dropped", "count", sum.Duplicates)
		}
	}
	sum.Addresses = len(recs)
	for _, v := range recs {
		if v.Postcode == "" {
			sum.NoPostcode++
		}
	}

	res, err := a.resolveAll(ctx, r, recs)
	if err != nil {
		return nil, err
	}

	if err = a.write(addrs.Columns, res, sum); err != nil {
		return nil, err
	}

	if a.cfg.Output.Row > 0 && !a.quiet {
		showResult(res[0])
	}
	return sum, nil
}

// selectRow returns the record of a 1-based data row. Rows are counted
// the same way as Record.Line, blank lines included.
func selectRow(recs []address.Record, row int) ([]address.Record, error) {
	for _, v := range recs {
		if v.Line == row {
			return []address.Record{v}, nil
		}
	}
	var total int
	if len(recs) > 0 {
		total = recs[len(recs)-1].Line
	}
	return nil, RowOutOfRangeError(row, total)
}

// resolveAll resolves records with JobsNumber workers. Each worker writes
// to its own slots of the result slice, so no locking is needed.
func (a *annotator) resolveAll(
	ctx context.Context,
	r *resolver.Resolver,
	recs []address.Record,
) ([]resolver.Result, error) {
	res := make([]resolver.Result, len(recs))
	chIn := make(chan int)

	var bar *pb.ProgressBar
	if !a.quiet {
		bar = pb.Full.Start(len(recs))
		bar.Set("prefix", "Resolving ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	g, ctx := errgroup.WithContext(ctx)
	jobs := max(a.cfg.JobsNumber, 1)
	for range jobs {
		g.Go(func() error {
			for i := range chIn {
				res[i] = r.Resolve(recs[i])
				if bar != nil {
					bar.Increment()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(chIn)
		for i := range recs {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- i:
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (a *annotator) write(
	cols []string,
	res []resolver.Result,
	sum *Summary,
) (err error) {
	resolved, err := iotsv.CreateWriter(a.cfg.Output.Resolved, cols)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, resolved.Close())
	}()

	review, err := iotsv.CreateWriter(a.cfg.Output.NeedsReview, cols)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, review.Close())
	}()

	for _, v := range res {
		sum.add(v)
		w := review
		if v.Stream == resolver.Resolved {
			w = resolved
		}
		if err = w.Write(v); err != nil {
			return err
		}
	}
	return nil
}

func (a *annotator) report(sum *Summary, dur time.Duration) {
	slog.Info("Resolution finished",
		"addresses", sum.Addresses,
		"duplicates", sum.Duplicates,
		"no-postcode", sum.NoPostcode,
		"resolved", sum.Resolved,
		"needs-review", sum.NeedsReview,
		"no-match", sum.ByState[resolver.NoMatch],
		"term-only", sum.ByState[resolver.TermOnly],
		"ambiguous", sum.ByState[resolver.Ambiguous],
		"by-postcode", sum.ByMethod[resolver.ByPostcode],
		"by-metro", sum.ByMethod[resolver.ByMetro],
		"duration", gnfmt.TimeString(dur.Seconds()),
	)

	if sum.Duplicates > 0 {
		gn.Warn("<warn>Dropped %s records with repeated address_row_id</warn>",
			humanize.Comma(int64(sum.Duplicates)))
	}
	if sum.NoPostcode > 0 {
		gn.Warn("<warn>%s addresses have no postal code</warn>",
			humanize.Comma(int64(sum.NoPostcode)))
	}

	gn.Info(
		"Resolved <em>%s</em> of %s addresses, %s need review",
		humanize.Comma(int64(sum.Resolved)),
		humanize.Comma(int64(sum.Addresses)),
		humanize.Comma(int64(sum.NeedsReview)),
	)
	gn.Info("Results are in <em>%s</em> and <em>%s</em>, done in %s",
		a.cfg.Output.Resolved,
		a.cfg.Output.NeedsReview,
		gnfmt.TimeString(dur.Seconds()),
	)
}

func showResult(r resolver.Result) {
	gn.Info(`Row %d (%s)
  <em>Normalized:</em> %s
  <em>Street:</em> %s %s
  <em>Postcode:</em> %s
  <em>State:</em> %s, %s
  <em>Place:</em> %s, %s (by %s)
  <em>Supporting terms:</em> %s`,
		r.Record.Line, r.Record.RowID,
		r.Normalized.Text,
		r.Normalized.StreetNumber, r.Normalized.StreetType,
		r.Postcode,
		r.State, r.Stream,
		r.Suburb, r.Town, r.Method,
		strings.Join(r.SupportingTerms, ", "),
	)
}
