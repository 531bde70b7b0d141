package upload

import (
	"github.com/rpaste-cli/rpaste/cfg"
)

// Sentinel file argument that reads the upload from standard input.
const StdinArg = "-"

type Args struct {
	// Path given with --config. $RPASTE_CONFIG takes precedence.
	ConfigPath string

	// Command line values layered over the config file.
	Server   string
	Auth     string
	Oneshot  bool
	Expire   string
	Filename string
	Prettify bool

	// Operations, in order of precedence.
	PrintServerVersion bool
	ListFiles          bool
	Delete             bool
	URL                string
	Remote             string
	Files              []string
}

func (a Args) Overrides() cfg.Overrides {
	return cfg.Overrides{
		Server:   a.Server,
		Auth:     a.Auth,
		Oneshot:  a.Oneshot,
		Expire:   a.Expire,
		Filename: a.Filename,
		Prettify: a.Prettify,
		Delete:   a.Delete,
	}
}

// HasWork reports whether anything besides printing help was requested.
func (a Args) HasWork() bool {
	return len(a.Files) > 0 ||
		a.URL != "" ||
		a.Remote != "" ||
		a.PrintServerVersion ||
		a.ListFiles ||
		a.Delete
}

func (a Args) readsStdin() bool {
	for _, f := range a.Files {
		if f == StdinArg {
			return true
		}
	}
	return false
}
