package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/txtopo/internal/app"
	"github.com/vk/txtopo/internal/render"
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
	flagSet := flag.NewFlagSet("txtopo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
txtopo - Transaction topology visualization for saga and TCC declarations.

Usage:
  txtopo [options] [DECL_PATH]

Arguments:
  DECL_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	declFlag := flagSet.String("decl", "", "Path to the declaration file or directory.")
	dFlag := flagSet.String("d", "", "Path to the declaration file or directory (shorthand).")
	formatFlag := flagSet.String("format", "ascii", "Output format. Options: 'ascii', 'dot', 'mermaid', 'json', 'svg'.")
	validateFlag := flagSet.Bool("validate", false, "Only validate the declarations, skipping diagram output.")
	summaryFlag := flagSet.Bool("summary", false, "Print an execution summary after each diagram.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port for the HTTP visualization API. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *declFlag != "" {
		path = *declFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Declaration path determined.", "path", path)

	if path == "" && *servePortFlag == 0 {
		slog.Debug("No declaration path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format, err := render.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DeclPath:     path,
		Format:       format,
		ValidateOnly: *validateFlag,
		Summary:      *summaryFlag,
		ServePort:    *servePortFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
