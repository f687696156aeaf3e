// Package strategy provides the default per-node behaviors attached to
// core.Node: activations, the weighted-sum value rule, the proportional
// error rule and the delta weight rule.
//
// Activations:
//
//	Sigmoid      1/(1+e^-x)            derivative y(1-y)
//	Tanh         tanh x                derivative 1-y²
//	Linear       x                     derivative 1
//	Passthrough  x                     derivative y
//	Step         1 if x ≥ T else 0     derivative 0 if y < 0 else 1
//	ReLU         max(0, x)             derivative 1 if y > 0 else 0
//
// Derivatives take the activation output y, not the input x.
//
// Activation(name) resolves the lowercase names above for configuration files.
package strategy
