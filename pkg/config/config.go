// Package config provides configuration management for cogpn.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Files: reference, synonyms, exclusions, street_types, suburb_words, model
//   - Output: resolved, needs_review
//   - Model: training thresholds
//   - Gazetteer: metro_name, metro_municipality
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Output.Row (resolve a single data row)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use COGPN_ prefix with underscores for nesting:
//
//	COGPN_FILES_REFERENCE=AfriGIS_Suburbs_Towns_List.csv
//	COGPN_MODEL_TOP_FRACTION=0.1
//	COGPN_LOG_LEVEL=info
//	COGPN_JOBS_NUMBER=8
//
// A .env file in the working directory is read before the environment.
package config

import (
	"runtime"

	"github.com/cogpn/cogpn/pkg/model"
)

// Config represents the complete cogpn configuration.
type Config struct {
	// Files are the locations of input data and of the trained model.
	Files FilesConfig `mapstructure:"files" yaml:"files"`

	// Output are the locations of resolution results.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Model contains thresholds of model training.
	Model ModelConfig `mapstructure:"model" yaml:"model"`

	// Gazetteer describes the metro city of the place hierarchy.
	Gazetteer GazetteerConfig `mapstructure:"gazetteer" yaml:"gazetteer"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent resolution workers.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// FilesConfig contains paths of auxiliary input files.
type FilesConfig struct {
	// Reference is the tab-separated AfriGIS suburbs and towns list.
	Reference string `mapstructure:"reference" yaml:"reference"`

	// Synonyms is a CSV of 'term, replacement' pairs.
	Synonyms string `mapstructure:"synonyms" yaml:"synonyms"`

	// Exclusions is a CSV of 'suburb, town' pairs left out of the gazetteer.
	Exclusions string `mapstructure:"exclusions" yaml:"exclusions"`

	// StreetTypes lists street-type words, one per line.
	StreetTypes string `mapstructure:"street_types" yaml:"street_types"`

	// SuburbWords lists extra place names, one per line.
	SuburbWords string `mapstructure:"suburb_words" yaml:"suburb_words"`

	// Model is the JSON file written by training and read by resolution.
	Model string `mapstructure:"model" yaml:"model"`
}

// OutputConfig contains resolution output settings.
type OutputConfig struct {
	// Resolved receives addresses with a confident place.
	Resolved string `mapstructure:"resolved" yaml:"resolved"`

	// NeedsReview receives everything else.
	NeedsReview string `mapstructure:"needs_review" yaml:"needs_review"`

	// Row limits resolution to one 1-based data row. Zero means all rows.
	Row int `mapstructure:"row" yaml:"row"`
}

// ModelConfig mirrors model.Params.
type ModelConfig struct {
	TopFraction         float64 `mapstructure:"top_fraction" yaml:"top_fraction"`
	MinGlobalCount      int     `mapstructure:"min_global_count" yaml:"min_global_count"`
	CrowdedListLen      int     `mapstructure:"crowded_list_len" yaml:"crowded_list_len"`
	MinGroupCount       int     `mapstructure:"min_group_count" yaml:"min_group_count"`
	GroupShare          float64 `mapstructure:"group_share" yaml:"group_share"`
	PairMinCount        int     `mapstructure:"pair_min_count" yaml:"pair_min_count"`
	PairShare           float64 `mapstructure:"pair_share" yaml:"pair_share"`
	MaxTermsPerAddress  int     `mapstructure:"max_terms_per_address" yaml:"max_terms_per_address"`
	MetroTerm           string  `mapstructure:"metro_term" yaml:"metro_term"`
	MetroPostcodePrefix string  `mapstructure:"metro_postcode_prefix" yaml:"metro_postcode_prefix"`
	LinkedOnly          bool    `mapstructure:"linked_only" yaml:"linked_only"`
}

// GazetteerConfig names the metro city.
type GazetteerConfig struct {
	// MetroName is the city whose towns are nested under one node.
	MetroName string `mapstructure:"metro_name" yaml:"metro_name"`

	// MetroMunicipality is the local municipality of the metro.
	MetroMunicipality string `mapstructure:"metro_municipality" yaml:"metro_municipality"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	p := model.DefaultParams()
	res := &Config{
		Files: FilesConfig{
			Reference:   "AfriGIS_Suburbs_Towns_List.csv",
			Synonyms:    "synonyms.csv",
			Exclusions:  "excluded_places.csv",
			StreetTypes: "street_types.txt",
			SuburbWords: "all_suburbs_words.txt",
			Model:       "data.json",
		},
		Output: OutputConfig{
			Resolved:    "annotated.tsv",
			NeedsReview: "problem_annotated.tsv",
		},
		Model: ModelConfig{
			TopFraction:         p.TopFraction,
			MinGlobalCount:      p.MinGlobalCount,
			CrowdedListLen:      p.CrowdedListLen,
			MinGroupCount:       p.MinGroupCount,
			GroupShare:          p.GroupShare,
			PairMinCount:        p.PairMinCount,
			PairShare:           p.PairShare,
			MaxTermsPerAddress:  p.MaxTermsPerAddress,
			MetroTerm:           p.MetroTerm,
			MetroPostcodePrefix: p.MetroPostcodePrefix,
			LinkedOnly:          p.LinkedOnly,
		},
		Gazetteer: GazetteerConfig{
			MetroName:         "Cape Town",
			MetroMunicipality: "City of Cape Town",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}

// Params converts the Model section to training parameters.
func (c *Config) Params() model.Params {
	m := c.Model
	return model.Params{
		TopFraction:         m.TopFraction,
		MinGlobalCount:      m.MinGlobalCount,
		CrowdedListLen:      m.CrowdedListLen,
		MinGroupCount:       m.MinGroupCount,
		GroupShare:          m.GroupShare,
		PairMinCount:        m.PairMinCount,
		PairShare:           m.PairShare,
		MaxTermsPerAddress:  m.MaxTermsPerAddress,
		MetroTerm:           m.MetroTerm,
		MetroPostcodePrefix: m.MetroPostcodePrefix,
		LinkedOnly:          m.LinkedOnly,
	}
}
