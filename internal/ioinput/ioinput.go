// Package ioinput loads the auxiliary inputs shared by training and
// resolution: the place hierarchy, synonyms, street types and extra place
// names.
package ioinput

import (
	"github.com/cogpn/cogpn/internal/iogazetteer"
	"github.com/cogpn/cogpn/internal/iotsv"
	"github.com/cogpn/cogpn/pkg/config"
	"github.com/cogpn/cogpn/pkg/gazetteer"
	"github.com/cogpn/cogpn/pkg/textnorm"
)

// Inputs are the loaded auxiliary data.
type Inputs struct {
	Hierarchy   *gazetteer.Hierarchy
	Synonyms    map[string]string
	StreetTypes []string
	SuburbWords []string
}

// Load reads every configured auxiliary file. Word lists with an empty
// path are skipped, a configured path that does not exist is an error.
func Load(cfg *config.Config) (*Inputs, error) {
	var err error
	res := &Inputs{}

	if res.Hierarchy, err = iogazetteer.Load(cfg); err != nil {
		return nil, err
	}

	if cfg.Files.Synonyms != "" {
		if res.Synonyms, err = iotsv.ReadSynonyms(cfg.Files.Synonyms); err != nil {
			return nil, err
		}
	}

	if cfg.Files.StreetTypes != "" {
		if res.StreetTypes, err = iotsv.ReadWords(cfg.Files.StreetTypes); err != nil {
			return nil, err
		}
	}

	if cfg.Files.SuburbWords != "" {
		if res.SuburbWords, err = iotsv.ReadWords(cfg.Files.SuburbWords); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// Normalizer creates a text normalizer that keeps multi-word gazetteer
// names, extra suburb words and the given terms as single tokens.
func (in *Inputs) Normalizer(terms ...string) *textnorm.Normalizer {
	opts := []textnorm.Option{
		textnorm.OptPlaceNames(in.Hierarchy.MultiWordNames()),
		textnorm.OptPlaceNames(in.SuburbWords),
		textnorm.OptPlaceNames(terms),
	}
	if len(in.Synonyms) > 0 {
		opts = append(opts, textnorm.OptSynonyms(in.Synonyms))
	}
	if len(in.StreetTypes) > 0 {
		opts = append(opts, textnorm.OptStreetTypes(in.StreetTypes))
	}
	return textnorm.New(opts...)
}
