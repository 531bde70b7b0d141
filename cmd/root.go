package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rpaste-cli/rpaste/cmd/internal/cmderr"
	"github.com/rpaste-cli/rpaste/printer"
	"github.com/rpaste-cli/rpaste/upload"
	"github.com/rpaste-cli/rpaste/util"
	"github.com/rpaste-cli/rpaste/version"
)

var (
	rootCmd = &cobra.Command{
		Use:     "rpaste [flags] <file(s)>",
		Short:   "A CLI tool for rustypaste.",
		Long:    "Uploads files, standard input and URLs to a rustypaste server.\nUse - as the file to read from standard input.",
		Version: version.CLIDisplayString(),
		// We print our own errors in the Execute function.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColorFlag || os.Getenv("NO_COLOR") != "" {
				printer.SwitchToPlain()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			uploadArgs := newArgs(args)
			if !uploadArgs.HasWork() && stdinIsTerminal() {
				return cmd.Help()
			}

			config, err := upload.LoadConfig(uploadArgs)
			if err != nil {
				return cmderr.PasteErr{Err: err}
			}
			if err := cmderr.RequireServerAddress(config); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if err := upload.Run(ctx, config, uploadArgs); err != nil {
				return cmderr.PasteErr{Err: err}
			}
			return nil
		},
	}
)

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if _, isPasteErr := err.(cmderr.PasteErr); !isPasteErr {
			// Print usage for CLI usage errors (e.g. unknown flag) but not for
			// failed uploads.
			cmd.Println(cmd.UsageString())
		}

		exitCode := 1
		var exitErr util.ExitError
		if isExitErr := errors.As(err, &exitErr); isExitErr {
			exitCode = exitErr.ExitCode
		}
		printer.Stderr.Errorf("%s\n", err)
		os.Exit(exitCode)
	}
}

func init() {
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	registerFlags(rootCmd.Flags())
	registerGlobalFlags(rootCmd.PersistentFlags())
}
