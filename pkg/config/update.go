package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Output.Row).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	str := func(s string, opt func(string) Option) {
		if s != "" {
			res = append(res, opt(s))
		}
	}
	num := func(i int, opt func(int) Option) {
		if i > 0 {
			res = append(res, opt(i))
		}
	}
	frac := func(f float64, opt func(float64) Option) {
		if f > 0 {
			res = append(res, opt(f))
		}
	}

	str(c.Files.Reference, OptFilesReference)
	str(c.Files.Synonyms, OptFilesSynonyms)
	str(c.Files.Exclusions, OptFilesExclusions)
	str(c.Files.StreetTypes, OptFilesStreetTypes)
	str(c.Files.SuburbWords, OptFilesSuburbWords)
	str(c.Files.Model, OptFilesModel)

	str(c.Output.Resolved, OptOutputResolved)
	str(c.Output.NeedsReview, OptOutputNeedsReview)

	frac(c.Model.TopFraction, OptModelTopFraction)
	num(c.Model.MinGlobalCount, OptModelMinGlobalCount)
	num(c.Model.CrowdedListLen, OptModelCrowdedListLen)
	num(c.Model.MinGroupCount, OptModelMinGroupCount)
	frac(c.Model.GroupShare, OptModelGroupShare)
	num(c.Model.PairMinCount, OptModelPairMinCount)
	frac(c.Model.PairShare, OptModelPairShare)
	num(c.Model.MaxTermsPerAddress, OptModelMaxTermsPerAddress)
	str(c.Model.MetroTerm, OptModelMetroTerm)
	str(c.Model.MetroPostcodePrefix, OptModelMetroPostcodePrefix)
	res = append(res, OptModelLinkedOnly(c.Model.LinkedOnly))

	str(c.Gazetteer.MetroName, OptGazetteerMetroName)
	str(c.Gazetteer.MetroMunicipality, OptGazetteerMetroMunicipality)

	str(c.Log.Format, OptLogFormat)
	str(c.Log.Level, OptLogLevel)
	str(c.Log.Destination, OptLogDestination)

	num(c.JobsNumber, OptJobsNumber)
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidFraction(name string, f float64) bool {
	res := f > 0 && f <= 1
	if !res {
		gn.Warn("<em>%s</em> has to be in (0, 1], ignoring %g", name, f)
	}
	return res
}

func isValidDigits(name, s string) bool {
	res := s != "" && strings.Trim(s, "0123456789") == ""
	if !res {
		gn.Warn("<em>%s</em> has to contain digits only, ignoring '%s'", name, s)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
