package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/neurograph/config"
)

// ExitError carries the process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options is the validated command line.
type options struct {
	ConfigPath string
	Epochs     int
	Vars       map[string]string
	LogFormat  string
	LogLevel   string
}

// varList collects repeated -var flags.
type varList []string

func (v *varList) String() string { return strings.Join(*v, ",") }

func (v *varList) Set(s string) error {
	*v = append(*v, s)
	return nil
}

// parseArgs processes command-line arguments. It returns the options, a
// boolean telling the caller to exit cleanly, or an ExitError.
func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	flagSet := flag.NewFlagSet("xor", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
xor - trains a feed-forward graph network and prints its predictions.

Usage:
  xor [options]

Without -config the built-in 2-4-1 exclusive-or network is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	var vars varList
	configFlag := flagSet.String("config", "", "Path to an HCL network description.")
	epochsFlag := flagSet.Int("epochs", 0, "Override the number of training epochs. 0 keeps the file's value.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.Var(&vars, "var", "Set a variable as key=value. May be repeated.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	if *epochsFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid epochs: must be ≥ 0"}
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

	parsed, err := config.ParseVariables(vars)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &options{
		ConfigPath: *configFlag,
		Epochs:     *epochsFlag,
		Vars:       parsed,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}, false, nil
}
