// Package iogazetteer builds the place hierarchy from configured files and
// reports on it.
package iogazetteer

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cogpn/cogpn/internal/iotsv"
	"github.com/cogpn/cogpn/pkg/config"
	"github.com/cogpn/cogpn/pkg/gazetteer"
	"github.com/cogpn/cogpn/pkg/lifecycle"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"gopkg.in/yaml.v3"
)

// Load reads the reference list and the exclusions and builds the
// hierarchy. An empty exclusions path means no exclusions.
func Load(cfg *config.Config) (*gazetteer.Hierarchy, error) {
	rows, err := iotsv.ReadReference(cfg.Files.Reference)
	if err != nil {
		return nil, err
	}

	var excl []gazetteer.Pair
	if cfg.Files.Exclusions != "" {
		excl, err = iotsv.ReadExclusions(cfg.Files.Exclusions)
		if err != nil {
			return nil, err
		}
	}

	s := gazetteer.Settings{
		MetroName:         cfg.Gazetteer.MetroName,
		MetroMunicipality: cfg.Gazetteer.MetroMunicipality,
		Exclusions:        excl,
	}
	h, err := gazetteer.Build(rows, s)
	if err != nil {
		return nil, err
	}

	if metro := h.Metro(); metro != nil && len(metro.Children) == 0 {
		return nil, NoMetroError(s.MetroName, s.MetroMunicipality)
	}

	sum, err := Summarize(h)
	if err != nil {
		return nil, err
	}
	slog.Info("Gazetteer built",
		"reference", cfg.Files.Reference,
		"rows", len(rows),
		"exclusions", len(excl),
		"towns", sum.Towns,
		"suburbs", sum.Suburbs,
		"depth", sum.Depth,
	)
	return h, nil
}

// Summary describes the shape of a hierarchy.
type Summary struct {
	Towns       int
	Suburbs     int
	MetroPlaces int
	Depth       int
}

// Summarize counts nodes by kind and checks parent consistency.
func Summarize(h *gazetteer.Hierarchy) (Summary, error) {
	var res Summary
	depth, err := h.Depth()
	if err != nil {
		return res, err
	}
	res.Depth = depth

	metro := h.Metro()
	h.Walk(func(n *gazetteer.Node) bool {
		switch n.Kind {
		case gazetteer.Town:
			res.Towns++
		case gazetteer.Suburb:
			res.Suburbs++
		}
		if h.IsAncestor(metro, n) {
			res.MetroPlaces++
		}
		return true
	})
	return res, nil
}

// Place is the report of one gazetteer node.
type Place struct {
	Name         string   `yaml:"name"`
	Kind         string   `yaml:"kind"`
	Postcode     string   `yaml:"postcode,omitempty"`
	Municipality string   `yaml:"municipality,omitempty"`
	SubID        string   `yaml:"ag_sub_id,omitempty"`
	SubCode      string   `yaml:"ag_sub_cde,omitempty"`
	InMetro      bool     `yaml:"in_metro"`
	Ancestry     []string `yaml:"ancestry"`
}

// Lookup is the report of one searched name.
type Lookup struct {
	Query  string  `yaml:"query"`
	Places []Place `yaml:"places"`
}

// Find reports every node called name.
func Find(h *gazetteer.Hierarchy, name string) Lookup {
	res := Lookup{Query: name, Places: []Place{}}
	metro := h.Metro()
	for _, n := range h.FindNodeByName(name) {
		anc := h.Ancestry(n)
		names := make([]string, len(anc))
		for i, v := range anc {
			names[i] = v.Name
		}
		res.Places = append(res.Places, Place{
			Name:         n.Name,
			Kind:         n.Kind.String(),
			Postcode:     n.Postcode,
			Municipality: n.Municipality,
			SubID:        n.SubID,
			SubCode:      n.SubCode,
			InMetro:      h.IsAncestor(metro, n),
			Ancestry:     names,
		})
	}
	return res
}

type inspector struct {
	cfg *config.Config
	out io.Writer
}

// NewInspector creates a lifecycle.Inspector that prints found places to
// stdout.
func NewInspector(cfg *config.Config) lifecycle.Inspector {
	return &inspector{cfg: cfg, out: os.Stdout}
}

func (i *inspector) Inspect(ctx context.Context, find []string) error {
	start := time.Now()

	h, err := Load(i.cfg)
	if err != nil {
		return err
	}
	sum, err := Summarize(h)
	if err != nil {
		return err
	}

	gn.Info(
		"Gazetteer has <em>%s</em> towns and <em>%s</em> suburbs, depth %d",
		humanize.Comma(int64(sum.Towns)),
		humanize.Comma(int64(sum.Suburbs)),
		sum.Depth,
	)
	if metro := h.Metro(); metro != nil {
		gn.Info("Metro <em>%s</em> contains %s places",
			metro.Name, humanize.Comma(int64(sum.MetroPlaces)))
	}

	if len(find) > 0 {
		res := make([]Lookup, 0, len(find))
		for _, v := range find {
			if err = ctx.Err(); err != nil {
				return err
			}
			res = append(res, Find(h, v))
		}
		enc := yaml.NewEncoder(i.out)
		enc.SetIndent(2)
		if err = enc.Encode(res); err != nil {
			return err
		}
		if err = enc.Close(); err != nil {
			return err
		}
	}

	dur := time.Since(start)
	slog.Info("Gazetteer inspected", "duration", gnfmt.TimeString(dur.Seconds()))
	return nil
}
