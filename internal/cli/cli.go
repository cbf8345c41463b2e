package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/shipstatic/shipstatic/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("shipstatic", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
shipstatic - Synthesizes a static-site delivery pipeline from a declarative manifest.

Usage:
  shipstatic [options] [MANIFEST_PATH]

Arguments:
  MANIFEST_PATH
    Path to a single .hcl manifest file or a directory containing .hcl files.
    Defaults to 'deploy.hcl'.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("config", "", "Path to the manifest file or directory.")
	cFlag := flagSet.String("c", "", "Path to the manifest file or directory (shorthand).")
	outDirFlag := flagSet.String("out", "", "Cloud assembly output directory. Empty uses the CDK default.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *manifestFlag != "" {
		path = *manifestFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		path = "deploy.hcl"
	}

	appConfig, err := app.NewConfig(app.Config{
		ManifestPath: path,
		LogFormat:    *logFormatFlag,
		LogLevel:     *logLevelFlag,
		OutDir:       *outDirFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return appConfig, false, nil
}
