package network

import "fmt"

// NeuronType classifies a node. It only affects the color a node is drawn with.
type NeuronType int

const (
	// Hidden is a node between the input and output layers.
	Hidden NeuronType = iota
	// Input is a sensor node.
	Input
	// Output is an actuator node.
	Output
	// Bias is a constant-activation node.
	Bias
)

// Node colors, one per neuron type.
const (
	ColorHidden = "white"
	ColorInput  = "blue"
	ColorOutput = "red"
	ColorBias   = "yellow"
)

var neuronColors = map[NeuronType]string{
	Hidden: ColorHidden,
	Input:  ColorInput,
	Output: ColorOutput,
	Bias:   ColorBias,
}

var neuronNames = map[NeuronType]string{
	Hidden: "hidden",
	Input:  "input",
	Output: "output",
	Bias:   "bias",
}

// Color returns the display color for t. Values outside the four known
// types are drawn with the bias color.
func (t NeuronType) Color() string {
	if c, ok := neuronColors[t]; ok {
		return c
	}
	return ColorBias
}

// String returns the lowercase type name, or "unknown(N)".
func (t NeuronType) String() string {
	if s, ok := neuronNames[t]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// NeuronTypes lists the known types in declaration order.
func NeuronTypes() []NeuronType {
	return []NeuronType{Hidden, Input, Output, Bias}
}
