/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cogpn/cogpn/internal/iofs"
	"github.com/cogpn/cogpn/internal/iologger"
	app "github.com/cogpn/cogpn/pkg"
	"github.com/cogpn/cogpn/pkg/config"
	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "cogpn",
		Short:   "Resolves free-text Cape Town addresses to AfriGIS places",
		Long: `cogpn (Cape of Good Place Names) assigns suburbs and towns from the
AfriGIS gazetteer to free-text patient addresses.

Workflow:
  1. 'cogpn tree' checks the reference list and shows the place hierarchy
  2. 'cogpn train' learns which address words point to which postal codes
  3. 'cogpn resolve' annotates addresses and splits them into a resolved
     file and a file that needs manual review

Settings are read from ~/.config/cogpn/config.yaml, from COGPN_*
environment variables (a .env file in the working directory is honored)
and from command-line flags, in increasing order of precedence.`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for cogpn")

	rootCmd.AddCommand(
		getTreeCmd(),
		getTrainCmd(),
		getResolveCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error

	// Variables from .env do not override the real environment.
	_ = godotenv.Load(".env")

	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Logging before the config is read.
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	setDefaults(v, config.New())
	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// setDefaults lets keys missing from config.yaml keep built-in values.
func setDefaults(v *viper.Viper, c *config.Config) {
	v.SetDefault("files.reference", c.Files.Reference)
	v.SetDefault("files.synonyms", c.Files.Synonyms)
	v.SetDefault("files.exclusions", c.Files.Exclusions)
	v.SetDefault("files.street_types", c.Files.StreetTypes)
	v.SetDefault("files.suburb_words", c.Files.SuburbWords)
	v.SetDefault("files.model", c.Files.Model)

	v.SetDefault("output.resolved", c.Output.Resolved)
	v.SetDefault("output.needs_review", c.Output.NeedsReview)

	v.SetDefault("model.top_fraction", c.Model.TopFraction)
	v.SetDefault("model.min_global_count", c.Model.MinGlobalCount)
	v.SetDefault("model.crowded_list_len", c.Model.CrowdedListLen)
	v.SetDefault("model.min_group_count", c.Model.MinGroupCount)
	v.SetDefault("model.group_share", c.Model.GroupShare)
	v.SetDefault("model.pair_min_count", c.Model.PairMinCount)
	v.SetDefault("model.pair_share", c.Model.PairShare)
	v.SetDefault("model.max_terms_per_address", c.Model.MaxTermsPerAddress)
	v.SetDefault("model.metro_term", c.Model.MetroTerm)
	v.SetDefault("model.metro_postcode_prefix", c.Model.MetroPostcodePrefix)
	v.SetDefault("model.linked_only", c.Model.LinkedOnly)

	v.SetDefault("gazetteer.metro_name", c.Gazetteer.MetroName)
	v.SetDefault("gazetteer.metro_municipality", c.Gazetteer.MetroMunicipality)

	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("log.destination", c.Log.Destination)

	v.SetDefault("jobs_number", c.JobsNumber)
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound one by one to keep the allowed set
	// visible. They match the fields of config.ToOptions().
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("files.reference", "COGPN_FILES_REFERENCE")
	v.BindEnv("files.synonyms", "COGPN_FILES_SYNONYMS")
	v.BindEnv("files.exclusions", "COGPN_FILES_EXCLUSIONS")
	v.BindEnv("files.street_types", "COGPN_FILES_STREET_TYPES")
	v.BindEnv("files.suburb_words", "COGPN_FILES_SUBURB_WORDS")
	v.BindEnv("files.model", "COGPN_FILES_MODEL")

	v.BindEnv("output.resolved", "COGPN_OUTPUT_RESOLVED")
	v.BindEnv("output.needs_review", "COGPN_OUTPUT_NEEDS_REVIEW")

	v.BindEnv("model.top_fraction", "COGPN_MODEL_TOP_FRACTION")
	v.BindEnv("model.min_global_count", "COGPN_MODEL_MIN_GLOBAL_COUNT")
	v.BindEnv("model.crowded_list_len", "COGPN_MODEL_CROWDED_LIST_LEN")
	v.BindEnv("model.min_group_count", "COGPN_MODEL_MIN_GROUP_COUNT")
	v.BindEnv("model.group_share", "COGPN_MODEL_GROUP_SHARE")
	v.BindEnv("model.pair_min_count", "COGPN_MODEL_PAIR_MIN_COUNT")
	v.BindEnv("model.pair_share", "COGPN_MODEL_PAIR_SHARE")
	v.BindEnv("model.max_terms_per_address", "COGPN_MODEL_MAX_TERMS_PER_ADDRESS")
	v.BindEnv("model.metro_term", "COGPN_MODEL_METRO_TERM")
	v.BindEnv("model.metro_postcode_prefix", "COGPN_MODEL_METRO_POSTCODE_PREFIX")
	v.BindEnv("model.linked_only", "COGPN_MODEL_LINKED_ONLY")

	v.BindEnv("gazetteer.metro_name", "COGPN_GAZETTEER_METRO_NAME")
	v.BindEnv("gazetteer.metro_municipality", "COGPN_GAZETTEER_METRO_MUNICIPALITY")

	v.BindEnv("log.level", "COGPN_LOG_LEVEL")
	v.BindEnv("log.format", "COGPN_LOG_FORMAT")
	v.BindEnv("log.destination", "COGPN_LOG_DESTINATION")

	v.BindEnv("jobs_number", "COGPN_JOBS_NUMBER")
}
