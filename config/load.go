package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

var (
	// ErrInvalidConfig indicates a description that decodes but cannot be built.
	ErrInvalidConfig = errors.New("config: invalid network description")

	// ErrBadVariable indicates a -var argument that is not of the form key=value.
	ErrBadVariable = errors.New("config: variable must be key=value")
)

// Loader parses network descriptions. The zero value is not usable; use
// NewLoader.
type Loader struct {
	logger *slog.Logger
	vars   map[string]cty.Value
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithVariables exposes vars to expressions as var.<name>. Values that parse
// as numbers are exposed as numbers, everything else as strings.
func WithVariables(vars map[string]string) LoaderOption {
	return func(l *Loader) {
		for k, v := range vars {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				l.vars[k] = cty.NumberFloatVal(f)
				continue
			}
			l.vars[k] = cty.StringVal(v)
		}
	}
}

// NewLoader returns a Loader that logs through logger. A nil logger discards
// every record.
func NewLoader(logger *slog.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Loader{logger: logger, vars: make(map[string]cty.Value)}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoadFile reads and decodes the description at path.
func (l *Loader) LoadFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network file %s: %w", path, err)
	}

	return l.Parse(src, path)
}

// Parse decodes src; filename is used in diagnostics only.
func (l *Loader) Parse(src []byte, filename string) (*File, error) {
	l.logger.Debug("Decoding network file.", "path", filename, "variables", len(l.vars))
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", filename, diags.Error())
	}

	l.logger.Debug("Successfully decoded network file.",
		"path", filename,
		"nodes_found", len(cfg.Nodes),
		"connections_found", len(cfg.Connects),
		"layers_found", len(cfg.Layers),
	)
	return &cfg, nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(l.vars),
		},
		Functions: map[string]function.Function{
			"min":    stdlib.MinFunc,
			"max":    stdlib.MaxFunc,
			"abs":    stdlib.AbsoluteFunc,
			"floor":  stdlib.FloorFunc,
			"ceil":   stdlib.CeilFunc,
			"concat": stdlib.ConcatFunc,
		},
	}
}

// ParseVariables splits key=value arguments into a map; later keys win.
func ParseVariables(args []string) (map[string]string, error) {
	vars := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadVariable, arg)
		}
		vars[k] = v
	}

	return vars, nil
}
