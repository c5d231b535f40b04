// Package iotrain runs model training over an address file.
package iotrain

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/cogpn/cogpn/internal/ioinput"
	"github.com/cogpn/cogpn/internal/iomodel"
	"github.com/cogpn/cogpn/internal/iotsv"
	"github.com/cogpn/cogpn/pkg/address"
	"github.com/cogpn/cogpn/pkg/config"
	"github.com/cogpn/cogpn/pkg/lifecycle"
	"github.com/cogpn/cogpn/pkg/model"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

type trainer struct {
	cfg *config.Config

	// quiet disables the progress bar.
	quiet bool
}

// New creates a lifecycle.Trainer.
func New(cfg *config.Config) lifecycle.Trainer {
	return &trainer{cfg: cfg}
}

// Train reads labelled addresses, builds the association model and saves
// it to the configured model file. Data-quality problems are reported as
// warnings, never as errors.
func (t *trainer) Train(ctx context.Context, path string) error {
	start := time.Now()
	slog.Info("Starting training", "addresses", path, "model", t.cfg.Files.Model)

	in, err := ioinput.Load(t.cfg)
	if err != nil {
		return err
	}

	addrs, err := iotsv.ReadAddresses(path)
	if err != nil {
		return err
	}

	b := model.NewBuilder(
		in.Hierarchy, in.Normalizer(), in.StreetTypes, t.cfg.Params(),
	)

	m, st, err := t.train(ctx, b, addrs.Records)
	if err != nil {
		return err
	}

	if err = iomodel.Save(t.cfg.Files.Model, m); err != nil {
		return err
	}

	t.report(st, m, addrs, time.Since(start))
	return nil
}

func (t *trainer) train(
	ctx context.Context,
	b *model.Builder,
	recs []address.Record,
) (*model.Model, *model.Stats, error) {
	recs, dups := address.Dedup(recs)
	st := model.NewStats()
	st.Duplicates = dups

	var bar *pb.ProgressBar
	if !t.quiet {
		bar = pb.Full.Start(len(recs))
		bar.Set("prefix", "Training ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	for i, v := range recs {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		b.Accumulate(st, v)
		if bar != nil {
			bar.Increment()
		}
	}
	return b.Build(st), st, nil
}

func (t *trainer) report(
	st *model.Stats,
	m *model.Model,
	addrs *iotsv.Addresses,
	dur time.Duration,
) {
	slog.Info("Training finished",
		"addresses", st.Addresses,
		"duplicates", st.Duplicates,
		"no-postcode", st.NoPostcode,
		"bad-postcode", addrs.BadPostcode,
		"postcodes", len(st.PerPostcode),
		"vocabulary", len(m.TermToPostcode),
		"linked-postcodes", len(m.PostcodeToSuburbs),
		"significant", len(m.TermCounts),
		"pairs", len(m.TokenPairs),
		"duration", gnfmt.TimeString(dur.Seconds()),
	)

	if st.Duplicates > 0 {
		gn.Warn("<warn>Dropped %s records with repeated address_row_id</warn>",
			humanize.Comma(int64(st.Duplicates)))
	}
	if st.NoPostcode > 0 {
		gn.Warn("<warn>%s addresses have no postal code</warn>",
			humanize.Comma(int64(st.NoPostcode)))
	}
	if m.Empty() {
		gn.Warn("<warn>Model has no significant terms</warn>")
	}

	gn.Info(
		"Trained on <em>%s</em> addresses: %s terms, %s linked postcodes, %s pairs",
		humanize.Comma(int64(st.Addresses)),
		humanize.Comma(int64(len(m.TermToPostcode))),
		humanize.Comma(int64(len(m.PostcodeToSuburbs))),
		humanize.Comma(int64(len(m.TokenPairs))),
	)
	gn.Info("Model saved to <em>%s</em> in %s",
		t.cfg.Files.Model, gnfmt.TimeString(dur.Seconds()))
}
