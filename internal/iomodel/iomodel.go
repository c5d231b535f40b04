// Package iomodel persists the association model as JSON.
package iomodel

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cogpn/cogpn/pkg/model"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
)

// Save writes the model to path, creating missing parent directories.
func Save(path string, m *model.Model) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := gnsys.MakeDir(dir); err != nil {
			return ModelEncodeError(path, err)
		}
	}

	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(m)
	if err != nil {
		slog.Error("Cannot encode model", "error", err, "path", path)
		return ModelEncodeError(path, err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		slog.Error("Cannot write model", "error", err, "path", path)
		return ModelEncodeError(path, err)
	}

	slog.Info("Model saved",
		"path", path,
		"vocabulary", len(m.TermToPostcode),
		"postcodes", len(m.PostcodeToSuburbs),
		"significant", len(m.TermCounts),
		"pairs", len(m.TokenPairs),
	)
	return nil
}

// Load reads a model saved by Save. A model without significant terms
// cannot resolve anything and is rejected.
func Load(path string) (*model.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, InputFileNotFoundError(path, err)
		}
		return nil, ModelDecodeError(path, err)
	}

	res := model.New()
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, res); err != nil {
		slog.Error("Cannot decode model", "error", err, "path", path)
		return nil, ModelDecodeError(path, err)
	}
	ensureMaps(res)

	for k := range res.TokenPairs {
		if _, ok := model.ParsePairKey(k); !ok {
			err = fmt.Errorf("malformed token pair %q", k)
			return nil, ModelDecodeError(path, err)
		}
	}

	if res.Empty() {
		return nil, ModelEmptyError(path)
	}

	slog.Info("Model loaded",
		"path", path,
		"vocabulary", len(res.TermToPostcode),
		"significant", len(res.TermCounts),
	)
	return res, nil
}

// ensureMaps replaces maps set to null in the file with empty ones.
func ensureMaps(m *model.Model) {
	if m.TermToPostcode == nil {
		m.TermToPostcode = make(map[string]string)
	}
	if m.PostcodeToSuburbs == nil {
		m.PostcodeToSuburbs = make(map[string][]string)
	}
	if m.TermCounts == nil {
		m.TermCounts = make(map[string]int)
	}
	if m.TokenPairs == nil {
		m.TokenPairs = make(map[string]int)
	}
}
