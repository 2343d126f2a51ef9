package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/genomeviz/pkg/network"
	"github.com/matzehuels/genomeviz/pkg/pipeline"
)

// inspectCommand creates the inspect command, which summarizes a genome
// without normalizing or exporting it.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <genome-file>",
		Short: "Summarize the nodes and links of a genome file",
		Long: `Inspect reads a genome file and prints node counts per neuron type, the
number of links and self-links, links whose endpoints are not declared,
and the raw weight range before normalization.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0])
		},
	}
}

func (c *CLI) runInspect(cmd *cobra.Command, path string) error {
	net, err := pipeline.Parse(cmd.Context(), path)
	if err != nil {
		return reportUserError(err)
	}
	s := net.Stats()

	printTitle(path)
	printKeyValue("nodes", strconv.Itoa(s.Nodes))
	for _, t := range neuronTypesIn(s) {
		printKeyValue("  "+t.String(), fmt.Sprintf("%d (%s)", s.ByType[t], t.Color()))
	}
	printKeyValue("links", strconv.Itoa(s.Links))
	printKeyValue("self-links", strconv.Itoa(s.SelfLinks))
	if n := danglingLinks(net); n > 0 {
		printWarning("%d link(s) reference undeclared nodes", n)
	}
	if s.Links > 0 {
		printKeyValue("weights", fmt.Sprintf("%g .. %g", s.MinWeight, s.MaxWeight))
	}
	return nil
}

// neuronTypesIn returns the known types followed by any unknown ones found in
// s, all in ascending order.
func neuronTypesIn(s network.Stats) []network.NeuronType {
	types := network.NeuronTypes()
	for t := range s.ByType {
		if !slices.Contains(types, t) {
			types = append(types, t)
		}
	}
	slices.Sort(types)
	return types
}

func danglingLinks(net *network.Network) int {
	n := 0
	for _, l := range net.Links() {
		if !net.HasNode(l.In) || !net.HasNode(l.Out) {
			n++
		}
	}
	return n
}
