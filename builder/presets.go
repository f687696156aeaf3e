package builder

import (
	"github.com/katalvlaran/neurograph/core"
	"github.com/katalvlaran/neurograph/strategy"
)

// InputNode returns an Input node that only fans out. Its value is set by
// the engine, so it carries no strategies.
func InputNode() *core.Node {
	return core.NewNode(core.Input, core.WithOutgoing())
}

// HiddenNode returns a Hidden node with both edge lists, sigmoid activation,
// the default rules and DefaultLearningRate. opts are applied last.
func HiddenNode(opts ...core.NodeOption) *core.Node {
	base := []core.NodeOption{
		core.WithIncoming(),
		core.WithOutgoing(),
		core.WithLearningRate(DefaultLearningRate),
	}

	return core.NewNode(core.Hidden, append(append(base, defaultRules()...), opts...)...)
}

// OutputNode returns an Output node with an incoming list only, a zero
// target, sigmoid activation, the default rules and DefaultLearningRate.
// opts are applied last.
func OutputNode(opts ...core.NodeOption) *core.Node {
	base := []core.NodeOption{
		core.WithIncoming(),
		core.WithTarget(0),
		core.WithLearningRate(DefaultLearningRate),
	}

	return core.NewNode(core.Output, append(append(base, defaultRules()...), opts...)...)
}

// NodeFor returns the preset for role; Unknown yields a bare node.
func NodeFor(role core.Role, opts ...core.NodeOption) *core.Node {
	switch role {
	case core.Input:
		return core.NewNode(core.Input, append([]core.NodeOption{core.WithOutgoing()}, opts...)...)
	case core.Hidden:
		return HiddenNode(opts...)
	case core.Output:
		return OutputNode(opts...)
	default:
		return core.NewNode(core.Unknown, opts...)
	}
}

func defaultRules() []core.NodeOption {
	return []core.NodeOption{
		core.WithActivation(strategy.Sigmoid{}),
		core.WithValueRule(strategy.WeightedSum{}),
		core.WithErrorRule(strategy.ProportionalError{}),
		core.WithWeightRule(strategy.DeltaRule{}),
	}
}
