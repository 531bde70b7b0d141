package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	units "github.com/docker/go-units"
	"github.com/pkg/errors"

	"github.com/rpaste-cli/rpaste/cfg"
	"github.com/rpaste-cli/rpaste/pasteerr"
	"github.com/rpaste-cli/rpaste/printer"
	"github.com/rpaste-cli/rpaste/rest"
	"github.com/rpaste-cli/rpaste/util"
)

// LoadConfig reads the config file and layers the command line values over it.
func LoadConfig(args Args) (*cfg.Config, error) {
	config, err := cfg.Load(args.ConfigPath)
	if err != nil {
		return nil, err
	}
	config.Apply(args.Overrides())
	return config, nil
}

func Run(ctx context.Context, config *cfg.Config, args Args) error {
	if config.Server.Address == "" {
		return pasteerr.New(pasteerr.NoServerAddress, "")
	}

	r := runner{
		client:   rest.NewUploader(config),
		prettify: config.Style.Prettify,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	return r.run(ctx, args)
}

type runner struct {
	client   rest.Client
	prettify bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (r runner) run(ctx context.Context, args Args) error {
	switch {
	case args.PrintServerVersion:
		v, err := r.client.RetrieveVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.stdout, v)
		return nil
	case args.ListFiles:
		return r.client.RetrieveList(ctx, r.stdout, r.prettify)
	}

	var results []rest.UploadResult
	switch {
	case args.Delete:
		for _, name := range args.Files {
			results = append(results, r.client.DeleteFile(ctx, name))
		}
	case args.URL != "":
		results = append(results, r.client.UploadURL(ctx, args.URL))
	case args.Remote != "":
		results = append(results, r.client.UploadRemoteURL(ctx, args.Remote))
	case args.readsStdin():
		results = append(results, r.client.UploadStream(ctx, r.stdin))
	default:
		for _, file := range expandFiles(args.Files) {
			if file.err != nil {
				results = append(results, rest.UploadResult{Input: file.path, Err: file.err})
				continue
			}
			logFileSize(file.path)
			results = append(results, r.client.UploadFile(ctx, file.path))
		}
	}

	return r.report(results)
}

// Prints one line per result and returns an ExitError if any failed.
func (r runner) report(results []rest.UploadResult) error {
	padding := 0
	if r.prettify {
		for _, res := range results {
			if n := utf8.RuneCountInString(res.Input); n > padding {
				padding = n
			}
		}
	}

	failed := 0
	for _, res := range results {
		prefix := ""
		if r.prettify {
			prefix = fmt.Sprintf("%-*s %s ", padding, res.Input, printer.ResultArrow(res.Err == nil))
		}
		if res.Err != nil {
			failed++
			fmt.Fprintf(r.stderr, "%s%s\n", prefix, res.Err)
			continue
		}
		fmt.Fprintf(r.stdout, "%s%s\n", prefix, strings.TrimSpace(res.Value))
	}

	if failed > 0 {
		return util.ExitError{
			ExitCode: 1,
			Err:      errors.Errorf("%d of %d inputs failed", failed, len(results)),
		}
	}
	return nil
}

type expandedFile struct {
	path string
	err  error
}

// Expands arguments containing wildcards into the files they match. Other
// arguments are passed through untouched; a missing file is reported when it
// is uploaded.
func expandFiles(paths []string) []expandedFile {
	var files []expandedFile
	for _, path := range paths {
		if !strings.Contains(path, "*") {
			files = append(files, expandedFile{path: path})
			continue
		}

		base, pattern := doublestar.SplitPattern(filepath.ToSlash(path))
		matches, err := doublestar.Glob(os.DirFS(base), pattern)
		if err != nil {
			files = append(files, expandedFile{
				path: path,
				err:  pasteerr.Wrap(pasteerr.IO, errors.Wrapf(err, "bad pattern %q", path)),
			})
			continue
		}
		if len(matches) == 0 {
			files = append(files, expandedFile{
				path: path,
				err:  pasteerr.Errorf(pasteerr.IO, "no match for path pattern %s", path),
			})
			continue
		}

		printer.Debugf("Pattern %s matched %d files\n", path, len(matches))
		for _, match := range matches {
			files = append(files, expandedFile{path: filepath.Join(base, filepath.FromSlash(match))})
		}
	}
	return files
}

func logFileSize(path string) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		printer.Debugf("Uploading %s (%s)\n", path, units.HumanSize(float64(info.Size())))
	}
}
