// Package iofs prepares the cogpn directories under the user's home and
// writes the default config.yaml on first run.
package iofs

import (
	_ "embed"
	"log/slog"
	"os"

	"github.com/cogpn/cogpn/pkg/config"
)

// ConfigYAML is the commented default configuration. Its values match
// config.New.
//
//go:embed config.yaml
var ConfigYAML string

// appDir is a directory cogpn keeps under the home directory.
type appDir struct {
	purpose string
	path    string
}

func appDirs(homeDir string) []appDir {
	return []appDir{
		{"configuration", config.ConfigDir(homeDir)},
		{"cache", config.CacheDir(homeDir)},
		{"logs", config.LogDir(homeDir)},
	}
}

// EnsureDirs creates the configuration, cache and log directories.
// Directories that already exist are left as they are.
func EnsureDirs(homeDir string) error {
	for _, d := range appDirs(homeDir) {
		info, err := os.Stat(d.path)
		if err == nil && info.IsDir() {
			continue
		}
		if err = os.MkdirAll(d.path, 0755); err != nil {
			return CreateDirError(d.purpose, d.path, err)
		}
		slog.Debug("Directory created", "purpose", d.purpose, "path", d.path)
	}
	return nil
}

// EnsureConfigFile writes ConfigYAML to the config directory unless the
// user already has a config.yaml there. A directory in place of the file
// is an error.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return ConfigFileError(path, errConfigIsDir)
	case err == nil:
		return nil
	case !os.IsNotExist(err):
		return ReadFileError(path, err)
	}

	if err = os.WriteFile(path, []byte(ConfigYAML), 0644); err != nil {
		return ConfigFileError(path, err)
	}
	slog.Info("Default config written", "path", path)
	return nil
}
