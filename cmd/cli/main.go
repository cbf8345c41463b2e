package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shipstatic/shipstatic/internal/app"
	"github.com/shipstatic/shipstatic/internal/cli"
	"github.com/shipstatic/shipstatic/internal/hcl"
)

// main is the entrypoint for the shipstatic application. The CDK toolkit
// invokes it via cdk.json; it can also be run directly to synthesize the
// cloud assembly without the toolkit.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (runErr error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			runErr = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	shipApp := app.NewApp(outW, appConfig, loader)

	return shipApp.Run(context.Background())
}
