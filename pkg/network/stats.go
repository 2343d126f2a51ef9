package network

// Stats summarizes a network before normalization.
type Stats struct {
	Nodes     int
	Links     int
	SelfLinks int
	ByType    map[NeuronType]int

	// MinWeight and MaxWeight are the raw weight extremes. Both are zero
	// when the network has no links.
	MinWeight float64
	MaxWeight float64
}

// Stats counts nodes per type and links, and reports the raw weight range.
func (n *Network) Stats() Stats {
	s := Stats{
		Nodes:  n.NodeCount(),
		Links:  len(n.links),
		ByType: make(map[NeuronType]int),
	}
	for _, node := range n.Nodes() {
		s.ByType[node.Type]++
	}
	for i, l := range n.links {
		if l.IsSelfLink() {
			s.SelfLinks++
		}
		if i == 0 || l.Weight < s.MinWeight {
			s.MinWeight = l.Weight
		}
		if i == 0 || l.Weight > s.MaxWeight {
			s.MaxWeight = l.Weight
		}
	}
	return s
}
