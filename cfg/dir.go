package cfg

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/rpaste-cli/rpaste/printer"
)

const (
	// Environment variable naming a config file. Takes precedence over the
	// --config flag.
	ConfigEnvVar = "RPASTE_CONFIG"

	configDirName  = "rustypaste"
	configFileName = "config.toml"
)

// Returns the config file locations to try, most preferred first.
func candidatePaths() []string {
	var paths []string

	home, err := homedir.Dir()
	if err != nil {
		printer.Stderr.Warningf("Failed to find $HOME, skipping ~/.%s: %v\n", configDirName, err)
	} else {
		paths = append(paths, filepath.Join(home, "."+configDirName, configFileName))
	}

	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, configDirName, configFileName))
	}
	return paths
}

// Picks the config file to load. An explicit path (from the environment or
// the command line) is returned even if it does not exist, so that the caller
// reports it. Returns "" when no file is configured or found.
func findConfigFile(explicit string) string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	if explicit != "" {
		return explicit
	}
	for _, p := range candidatePaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultConfigPath is where the config file is looked up first, for display
// in hints.
func DefaultConfigPath() string {
	if paths := candidatePaths(); len(paths) > 0 {
		return paths[0]
	}
	return filepath.Join("~", "."+configDirName, configFileName)
}
