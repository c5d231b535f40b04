package cmd

import (
	"github.com/cogpn/cogpn/pkg/config"
	"github.com/spf13/cobra"
)

// pathFlag is a file location flag that overrides one config field.
type pathFlag struct {
	name  string
	short string
	usage string
	opt   func(string) config.Option
}

var (
	referenceFlag = pathFlag{
		"reference", "r", "AfriGIS suburbs and towns list (tab-separated)",
		config.OptFilesReference,
	}
	synonymsFlag = pathFlag{
		"synonyms", "s", "CSV of 'term, replacement' pairs",
		config.OptFilesSynonyms,
	}
	exclusionsFlag = pathFlag{
		"exclusions", "e", "CSV of 'suburb, town' pairs left out of the gazetteer",
		config.OptFilesExclusions,
	}
	streetTypesFlag = pathFlag{
		"street-types", "t", "street-type words, one per line",
		config.OptFilesStreetTypes,
	}
	suburbWordsFlag = pathFlag{
		"suburb-words", "w", "additional multi-word place names, one per line",
		config.OptFilesSuburbWords,
	}
	modelFlag = pathFlag{
		"model", "m", "model file (JSON)",
		config.OptFilesModel,
	}
	outputFlag = pathFlag{
		"output", "o", "output file for resolved addresses",
		config.OptOutputResolved,
	}
	problemOutputFlag = pathFlag{
		"problem-output", "p", "output file for addresses that need review",
		config.OptOutputNeedsReview,
	}
)

// inputFlags are shared by training and resolution.
var inputFlags = []pathFlag{
	referenceFlag,
	synonymsFlag,
	exclusionsFlag,
	streetTypesFlag,
	suburbWordsFlag,
	modelFlag,
}

func addPathFlags(cmd *cobra.Command, flags []pathFlag) {
	for _, f := range flags {
		cmd.Flags().StringP(f.name, f.short, "", f.usage)
	}
}

// pathOptions converts flags set on the command line to config options.
func pathOptions(cmd *cobra.Command, flags []pathFlag) []config.Option {
	var res []config.Option
	for _, f := range flags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		v, _ := cmd.Flags().GetString(f.name)
		res = append(res, f.opt(v))
	}
	return res
}
