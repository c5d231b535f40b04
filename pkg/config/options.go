package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptFilesReference sets the AfriGIS reference list path.
func OptFilesReference(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference File", s) {
			c.Files.Reference = s
		}
	}
}

// OptFilesSynonyms sets the synonyms CSV path.
func OptFilesSynonyms(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Synonyms File", s) {
			c.Files.Synonyms = s
		}
	}
}

// OptFilesExclusions sets the excluded places CSV path.
func OptFilesExclusions(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Exclusions File", s) {
			c.Files.Exclusions = s
		}
	}
}

// OptFilesStreetTypes sets the street types list path.
func OptFilesStreetTypes(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Street Types File", s) {
			c.Files.StreetTypes = s
		}
	}
}

// OptFilesSuburbWords sets the extra place names list path.
func OptFilesSuburbWords(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Suburb Words File", s) {
			c.Files.SuburbWords = s
		}
	}
}

// OptFilesModel sets the model JSON path.
func OptFilesModel(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Model File", s) {
			c.Files.Model = s
		}
	}
}

// OptOutputResolved sets the path of resolved addresses.
func OptOutputResolved(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Resolved Output", s) {
			c.Output.Resolved = s
		}
	}
}

// OptOutputNeedsReview sets the path of addresses that need review.
func OptOutputNeedsReview(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Needs Review Output", s) {
			c.Output.NeedsReview = s
		}
	}
}

// OptOutputRow restricts resolution to one 1-based data row.
// Runtime-only field - not in ToOptions().
func OptOutputRow(i int) Option {
	return func(c *Config) {
		if isValidInt("Row", i) {
			c.Output.Row = i
		}
	}
}

// OptModelTopFraction sets the ranked share of a postcode's terms.
func OptModelTopFraction(f float64) Option {
	return func(c *Config) {
		if isValidFraction("Model Top Fraction", f) {
			c.Model.TopFraction = f
		}
	}
}

// OptModelMinGlobalCount sets the corpus-wide count a term needs.
func OptModelMinGlobalCount(i int) Option {
	return func(c *Config) {
		if isValidInt("Model Min Global Count", i) {
			c.Model.MinGlobalCount = i
		}
	}
}

// OptModelCrowdedListLen sets the ranked-list length that triggers the
// in-group count floor.
func OptModelCrowdedListLen(i int) Option {
	return func(c *Config) {
		if isValidInt("Model Crowded List Length", i) {
			c.Model.CrowdedListLen = i
		}
	}
}

// OptModelMinGroupCount sets the in-group count floor of crowded lists.
func OptModelMinGroupCount(i int) Option {
	return func(c *Config) {
		if isValidInt("Model Min Group Count", i) {
			c.Model.MinGroupCount = i
		}
	}
}

// OptModelGroupShare sets the minimal share of a term's count that must
// come from one postcode.
func OptModelGroupShare(f float64) Option {
	return func(c *Config) {
		if isValidFraction("Model Group Share", f) {
			c.Model.GroupShare = f
		}
	}
}

// OptModelPairMinCount sets the floor of co-occurrence counts.
func OptModelPairMinCount(i int) Option {
	return func(c *Config) {
		if isValidInt("Model Pair Min Count", i) {
			c.Model.PairMinCount = i
		}
	}
}

// OptModelPairShare sets the mutual association share of term pairs.
func OptModelPairShare(f float64) Option {
	return func(c *Config) {
		if isValidFraction("Model Pair Share", f) {
			c.Model.PairShare = f
		}
	}
}

// OptModelMaxTermsPerAddress caps terms used for pair counting.
func OptModelMaxTermsPerAddress(i int) Option {
	return func(c *Config) {
		if isValidInt("Model Max Terms Per Address", i) {
			c.Model.MaxTermsPerAddress = i
		}
	}
}

// OptModelMetroTerm sets the token that names the metro city.
func OptModelMetroTerm(s string) Option {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), "-")
	return func(c *Config) {
		if isValidString("Model Metro Term", s) {
			c.Model.MetroTerm = s
		}
	}
}

// OptModelMetroPostcodePrefix sets the postcode prefix of the metro centre.
func OptModelMetroPostcodePrefix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidDigits("Model Metro Postcode Prefix", s) {
			c.Model.MetroPostcodePrefix = s
		}
	}
}

// OptModelLinkedOnly sets whether vocabulary is kept only for postcodes
// linked to gazetteer places.
func OptModelLinkedOnly(b bool) Option {
	return func(c *Config) {
		c.Model.LinkedOnly = b
	}
}

// OptGazetteerMetroName sets the metro city name.
func OptGazetteerMetroName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Gazetteer Metro Name", s) {
			c.Gazetteer.MetroName = s
		}
	}
}

// OptGazetteerMetroMunicipality sets the metro local municipality.
func OptGazetteerMetroMunicipality(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Gazetteer Metro Municipality", s) {
			c.Gazetteer.MetroMunicipality = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent resolution workers.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
