// Package config decodes HCL network descriptions and builds the graph,
// dataset and training settings they describe.
//
// A description is a sequence of optional blocks:
//
//	network {                  # layered skeleton, see builder.Layered
//	  layers        = [2, 4, 1]
//	  activation    = "sigmoid"
//	  learning_rate = 0.2
//	  seed          = 7
//	  weight_min    = 0
//	  weight_max    = 1
//	}
//
//	node "7" {                 # extra or replacement node
//	  role            = "hidden"
//	  activation      = "passthrough"
//	  propagate_error = false
//	}
//
//	connect {                  # edge 0->7, both sides unless sides says otherwise
//	  from   = 0
//	  to     = 7
//	  sides  = "both"          # "both" | "incoming" | "outgoing"
//	  weight = 0.5
//	}
//
//	layer "1" {                # bulk settings for one frontier depth
//	  activation    = "relu"
//	  learning_rate = 0.1
//	}
//
//	train   { epochs = 100 }
//	dataset { inputs = [[0, 0], [1, 1]]  targets = [[0], [1]] }
//
// Expressions are evaluated with the variables supplied through
// WithVariables (addressed as var.<name>) and the functions min, max, abs,
// floor, ceil and concat.
//
// Blocks are applied in a fixed order: network, node, connect, layer. A
// connect side that the destination node cannot hold is skipped with a
// warning, which mirrors how the graph treats a missing edge list.
package config
