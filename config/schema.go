package config

// File is the decoded form of one network description.
type File struct {
	Network  *NetworkBlock  `hcl:"network,block"`
	Nodes    []NodeBlock    `hcl:"node,block"`
	Connects []ConnectBlock `hcl:"connect,block"`
	Layers   []LayerBlock   `hcl:"layer,block"`
	Train    *TrainBlock    `hcl:"train,block"`
	Dataset  *DatasetBlock  `hcl:"dataset,block"`
}

// NetworkBlock describes the layered skeleton and the graph-wide defaults.
type NetworkBlock struct {
	Layers       []int    `hcl:"layers,optional"`
	Activation   *string  `hcl:"activation,optional"`
	LearningRate *float64 `hcl:"learning_rate,optional"`
	Seed         *int64   `hcl:"seed,optional"`
	WeightMin    *float64 `hcl:"weight_min,optional"`
	WeightMax    *float64 `hcl:"weight_max,optional"`
}

// NodeBlock adds a role preset under the id in its label. The three
// boolean switches drop the matching strategy from the preset.
type NodeBlock struct {
	ID             string   `hcl:"id,label"`
	Role           string   `hcl:"role"`
	Activation     *string  `hcl:"activation,optional"`
	LearningRate   *float64 `hcl:"learning_rate,optional"`
	ComputeValue   *bool    `hcl:"compute_value,optional"`
	PropagateError *bool    `hcl:"propagate_error,optional"`
	UpdateWeights  *bool    `hcl:"update_weights,optional"`
}

// ConnectBlock wires the edge from -> to.
type ConnectBlock struct {
	From   int      `hcl:"from"`
	To     int      `hcl:"to"`
	Sides  *string  `hcl:"sides,optional"`
	Weight *float64 `hcl:"weight,optional"`
}

// LayerBlock applies settings to every node at one frontier depth.
type LayerBlock struct {
	Depth        string   `hcl:"depth,label"`
	Activation   *string  `hcl:"activation,optional"`
	LearningRate *float64 `hcl:"learning_rate,optional"`
}

// TrainBlock holds training settings.
type TrainBlock struct {
	Epochs int `hcl:"epochs"`
}

// DatasetBlock holds one training set; rows are examples.
type DatasetBlock struct {
	Inputs  [][]float64 `hcl:"inputs"`
	Targets [][]float64 `hcl:"targets"`
}

// Connection sides accepted by a connect block.
const (
	SidesBoth     = "both"
	SidesIncoming = "incoming"
	SidesOutgoing = "outgoing"
)

// DefaultEpochs is used when a description has no train block.
const DefaultEpochs = 1
