// Package builder assembles core.Graph networks from layer sizes and
// provides per-role node presets.
//
// The package offers the following key components:
//
//   - Layered(sizes, opts...): dense layer-to-layer topology.
//     – Zero-sized layers are skipped; the remaining layers are connected
//     in order, each node of layer i to each node of layer i+1.
//     – First non-empty layer is Input, last non-empty layer is Output,
//     everything between is Hidden. A single non-empty layer is Input.
//     – Node ids ascend in layer order starting at 0.
//   - Role presets:
//     – InputNode:  outgoing list only, no strategies.
//     – HiddenNode: both lists, all four strategies, learning rate.
//     – OutputNode: incoming list only, all four strategies, learning rate, target.
//   - Configuration primitives:
//     – BuilderOption: mutates builderConfig before construction.
//     – WithSeed / WithRand / WithWeightSource: where initial weights come from.
//     – WithWeightRange / WithActivation / WithLearningRate: node and edge defaults.
//
// Guarantees:
//
//   - Deterministic: equal options and sizes yield equal graphs and weights.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors are sentinels wrapped with method context.
package builder
