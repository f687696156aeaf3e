// Package neurograph builds, trains and evaluates small feed-forward
// networks whose topology is an arbitrary directed graph rather than a
// strict stack of layers.
//
// 🚀 What is neurograph?
//
//	A compact, deterministic engine that brings together:
//		• Graph model: nodes with optional edge lists and pluggable strategies
//		• Layered construction: fully connected skeletons with role presets
//		• Frontier propagation: forward values, backward errors, weight updates
//		• Pre-flight cycle detection in both directions
//		• HCL network descriptions and a command-line demo
//
// Everything is organized in subpackages:
//
//	core/      Graph, Node, Edge, strategy interfaces, bulk mapping
//	strategy/  activations and value, error and weight rules
//	weights/   initial weight sources (LCG, math/rand, constant)
//	builder/   Layered(sizes) and the Input/Hidden/Output presets
//	bfs/       frontier walks used by every propagation pass
//	dfs/       cycle detection (forward from inputs, backward from outputs)
//	network/   Fit, Predict and the three passes
//	metrics/   mean squared error and rounded accuracy
//	config/    HCL loader that builds a network, dataset and epochs
//	cmd/xor/   demo program
//
// Quick ASCII example of a topology layers alone cannot express:
//
//	    in0 ──► h2 ──► out4
//	     │             ▲
//	     └─────────────┘
//
// Sample network descriptions live in examples/.
//
//	go get github.com/katalvlaran/neurograph
package neurograph
