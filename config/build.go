package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/neurograph/builder"
	"github.com/katalvlaran/neurograph/core"
	"github.com/katalvlaran/neurograph/network"
	"github.com/katalvlaran/neurograph/strategy"
	"github.com/katalvlaran/neurograph/weights"
)

// Model is everything a description yields: the graph plus the optional
// training set and epoch count.
type Model struct {
	Graph   *core.Graph
	Epochs  int
	Inputs  [][]float64
	Targets [][]float64
}

// Network wraps the model's graph in a propagation engine.
func (m *Model) Network(opts ...network.Option) *network.Network {
	return network.New(m.Graph, opts...)
}

// Build turns a decoded description into a Model.
//
// Implementation:
//   - Stage 1: network block → builder.Layered, or an empty graph.
//   - Stage 2: node blocks → role presets added under their ids.
//   - Stage 3: connect blocks in order; an unsupported side is skipped.
//   - Stage 4: layer blocks → MapActivationAt / MapLearningRateAt.
//   - Stage 5: train and dataset blocks copied verbatim.
func (l *Loader) Build(f *File) (*Model, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil file", ErrInvalidConfig)
	}

	g, err := l.buildSkeleton(f.Network)
	if err != nil {
		return nil, err
	}
	for _, nb := range f.Nodes {
		if err = l.addNode(g, nb); err != nil {
			return nil, err
		}
	}
	for i, cb := range f.Connects {
		if err = l.connect(g, cb); err != nil {
			return nil, fmt.Errorf("connect block %d: %w", i, err)
		}
	}
	for _, lb := range f.Layers {
		if err = l.applyLayer(g, lb); err != nil {
			return nil, err
		}
	}

	m := &Model{Graph: g, Epochs: DefaultEpochs}
	if f.Train != nil {
		if f.Train.Epochs < 1 {
			return nil, fmt.Errorf("%w: epochs must be ≥ 1, got %d", ErrInvalidConfig, f.Train.Epochs)
		}
		m.Epochs = f.Train.Epochs
	}
	if f.Dataset != nil {
		m.Inputs, m.Targets = f.Dataset.Inputs, f.Dataset.Targets
	}

	l.logger.Debug("Network built.", "nodes", g.Size(), "edges", g.EdgeCount(), "epochs", m.Epochs, "examples", len(m.Inputs))
	return m, nil
}

// Load is LoadFile followed by Build.
func (l *Loader) Load(path string) (*Model, error) {
	f, err := l.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return l.Build(f)
}

func (l *Loader) buildSkeleton(nb *NetworkBlock) (*core.Graph, error) {
	if nb == nil {
		return core.NewGraph(), nil
	}

	var (
		bopts []builder.BuilderOption
		gopts []core.GraphOption
	)
	if nb.Seed != nil {
		bopts = append(bopts, builder.WithSeed(*nb.Seed))
		gopts = append(gopts, core.WithWeightSource(weights.NewSeededUniform(*nb.Seed)))
	}
	if nb.WeightMin != nil || nb.WeightMax != nil {
		lo, hi := core.DefaultWeightMin, core.DefaultWeightMax
		if nb.WeightMin != nil {
			lo = *nb.WeightMin
		}
		if nb.WeightMax != nil {
			hi = *nb.WeightMax
		}
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi < lo {
			return nil, fmt.Errorf("%w: weight range [%g, %g)", ErrInvalidConfig, lo, hi)
		}
		bopts = append(bopts, builder.WithWeightRange(lo, hi))
		gopts = append(gopts, core.WithWeightRange(lo, hi))
	}
	if nb.Activation != nil {
		act, err := strategy.Activation(*nb.Activation)
		if err != nil {
			return nil, fmt.Errorf("%w: network: %w", ErrInvalidConfig, err)
		}
		bopts = append(bopts, builder.WithActivation(act))
	}
	if nb.LearningRate != nil {
		if err := checkRate(*nb.LearningRate); err != nil {
			return nil, fmt.Errorf("network: %w", err)
		}
		bopts = append(bopts, builder.WithLearningRate(*nb.LearningRate))
	}

	if len(nb.Layers) == 0 {
		return core.NewGraph(gopts...), nil
	}
	l.logger.Debug("Building layered skeleton.", "layers", nb.Layers)
	g, err := builder.Layered(nb.Layers, bopts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return g, nil
}

func (l *Loader) addNode(g *core.Graph, nb NodeBlock) error {
	id, err := strconv.Atoi(nb.ID)
	if err != nil {
		return fmt.Errorf("%w: node %q: id must be an integer", ErrInvalidConfig, nb.ID)
	}
	role, err := core.ParseRole(nb.Role)
	if err != nil {
		return fmt.Errorf("%w: node %d: %w", ErrInvalidConfig, id, err)
	}

	var opts []core.NodeOption
	if nb.Activation != nil {
		act, err := strategy.Activation(*nb.Activation)
		if err != nil {
			return fmt.Errorf("%w: node %d: %w", ErrInvalidConfig, id, err)
		}
		opts = append(opts, core.WithActivation(act))
	}
	if nb.LearningRate != nil {
		if err = checkRate(*nb.LearningRate); err != nil {
			return fmt.Errorf("node %d: %w", id, err)
		}
		opts = append(opts, core.WithLearningRate(*nb.LearningRate))
	}
	if off(nb.ComputeValue) {
		opts = append(opts, core.WithValueRule(nil))
	}
	if off(nb.PropagateError) {
		opts = append(opts, core.WithErrorRule(nil))
	}
	if off(nb.UpdateWeights) {
		opts = append(opts, core.WithWeightRule(nil))
	}

	if g.HasNode(id) {
		l.logger.Warn("Node replaced; its previous role registration is kept.", "id", id, "role", role)
	}
	g.AddNode(id, builder.NodeFor(role, opts...))
	l.logger.Debug("Node added.", "id", id, "role", role)

	return nil
}

func (l *Loader) connect(g *core.Graph, cb ConnectBlock) error {
	sides := SidesBoth
	if cb.Sides != nil {
		sides = *cb.Sides
	}

	var err error
	switch sides {
	case SidesBoth:
		err = g.Connect(cb.From, cb.To)
	case SidesIncoming:
		err = g.ConnectHead(cb.From, cb.To)
	case SidesOutgoing:
		err = g.ConnectTail(cb.To, cb.From)
	default:
		return fmt.Errorf("%w: sides must be %q, %q or %q, got %q",
			ErrInvalidConfig, SidesBoth, SidesIncoming, SidesOutgoing, sides)
	}
	switch {
	case errors.Is(err, core.ErrNoIncoming), errors.Is(err, core.ErrNoOutgoing):
		l.logger.Warn("Connection skipped.", "from", cb.From, "to", cb.To, "sides", sides, "reason", err)
		return nil
	case err != nil:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cb.Weight != nil {
		e, ok := g.EdgeBetween(cb.From, cb.To)
		if !ok {
			return fmt.Errorf("%w: edge %d->%d missing after connect", ErrInvalidConfig, cb.From, cb.To)
		}
		e.Weight = *cb.Weight
	}
	l.logger.Debug("Connected.", "from", cb.From, "to", cb.To, "sides", sides)

	return nil
}

func (l *Loader) applyLayer(g *core.Graph, lb LayerBlock) error {
	depth, err := strconv.Atoi(lb.Depth)
	if err != nil || depth < 0 {
		return fmt.Errorf("%w: layer %q: depth must be a non-negative integer", ErrInvalidConfig, lb.Depth)
	}
	if lb.Activation != nil {
		act, err := strategy.Activation(*lb.Activation)
		if err != nil {
			return fmt.Errorf("%w: layer %d: %w", ErrInvalidConfig, depth, err)
		}
		g.MapActivationAt(act, depth)
	}
	if lb.LearningRate != nil {
		if err = checkRate(*lb.LearningRate); err != nil {
			return fmt.Errorf("layer %d: %w", depth, err)
		}
		g.MapLearningRateAt(*lb.LearningRate, depth)
	}
	l.logger.Debug("Layer settings applied.", "depth", depth, "nodes", len(g.NodesAtDepth(depth)))

	return nil
}

func checkRate(rate float64) error {
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: learning_rate must be a finite value ≥ 0, got %g", ErrInvalidConfig, rate)
	}

	return nil
}

func off(b *bool) bool { return b != nil && !*b }
