// Command xor builds a network from an HCL description, trains it and
// prints its predictions next to the expected values.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/neurograph/config"
	"github.com/katalvlaran/neurograph/metrics"
	"github.com/katalvlaran/neurograph/network"
)

//go:embed xor.hcl
var defaultConfig []byte

// errNoDataset is returned when a description has nothing to train on.
var errNoDataset = errors.New("xor: description has no dataset block")

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so tests can drive it with arbitrary args.
func run(outW io.Writer, args []string) error {
	opts, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(opts.LogLevel, opts.LogFormat, outW)
	loader := config.NewLoader(logger, config.WithVariables(opts.Vars))

	var file *config.File
	if opts.ConfigPath == "" {
		file, err = loader.Parse(defaultConfig, "xor.hcl")
	} else {
		file, err = loader.LoadFile(opts.ConfigPath)
	}
	if err != nil {
		return err
	}
	model, err := loader.Build(file)
	if err != nil {
		return err
	}
	if len(model.Inputs) == 0 {
		return errNoDataset
	}
	if opts.Epochs > 0 {
		model.Epochs = opts.Epochs
	}

	net := model.Network(network.WithOnEpoch(func(epoch int) error {
		logger.Debug("Epoch finished.", "epoch", epoch+1, "of", model.Epochs)
		return nil
	}))
	logger.Info("Training started.", "nodes", model.Graph.Size(), "edges", model.Graph.EdgeCount(), "epochs", model.Epochs)
	if err = net.Fit(model.Inputs, model.Targets, model.Epochs); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	pred, err := net.Predict(model.Inputs)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}
	printPredictions(outW, pred, model.Targets)

	report, err := metrics.Evaluate(pred, model.Targets)
	if err != nil {
		return err
	}
	logger.Info("Training finished.", slog.Float64("mse", report.MSE), slog.Float64("accuracy", report.Accuracy))
	fmt.Fprintln(outW, report)

	return nil
}

func printPredictions(w io.Writer, pred, targets [][]float64) {
	for i, row := range pred {
		fmt.Fprint(w, "Predicted: ")
		for _, v := range row {
			fmt.Fprintf(w, "%.2f ", v)
		}
		fmt.Fprint(w, "Expected: ")
		for _, v := range targets[i] {
			fmt.Fprintf(w, "%.2f ", v)
		}
		fmt.Fprintln(w)
	}
}
