// Package network trains and evaluates a core.Graph.
//
// One training example runs three frontier walks:
//
//	Forward  – input values are seeded, then each frontier node computes
//	           act(Σ headValue·weight) and passes control to its tails.
//	Error    – output errors are seeded as target − value, then each
//	           upstream node collects weight/Σown-incoming·error from
//	           every node it feeds.
//	Weights  – starting at the outputs and moving toward the inputs, every
//	           incoming weight is stepped by −rate·error·headValue.
//
// A node that lacks what a pass needs is skipped by that pass and not
// expanded; this is how bypass and relay nodes opt out of computation.
//
// Fit and Predict validate shapes and check both traversal directions for
// cycles before touching any node state. The engine never logs; callers
// observe progress through the OnEpoch and OnExample hooks.
//
// Errors:
//
//	ErrGraphNil       – no graph attached
//	ErrEmptyGraph     – graph has no nodes
//	ErrShapeMismatch  – vector widths or example counts disagree
//	ErrInvalidEpochs  – epochs < 1
//	ErrCycleDetected  – a cycle is reachable forward or backward
//	ErrNodeMissing    – a referenced node could not be resolved mid-pass
//	ErrHookAborted    – a hook returned an error
package network
