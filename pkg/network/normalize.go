package network

import (
	"math"

	errs "github.com/matzehuels/genomeviz/pkg/errors"
)

// DefaultOffset is the floor of every normalized weight.
const DefaultOffset = 0.5

// Initial extremes of the weight scan. maxw starts at the smallest positive
// normal float64 rather than at -Inf, so networks whose weights are all
// non-positive are scaled by |minw| alone.
const (
	scanMin = math.MaxFloat64
	scanMax = 0x1p-1022
)

// weightRange returns the smallest and largest link weight. With no links
// it returns the scan sentinels unchanged.
func weightRange(links []Link) (minw, maxw float64) {
	minw, maxw = scanMin, scanMax
	for _, l := range links {
		if l.Weight < minw {
			minw = l.Weight
		}
		if l.Weight > maxw {
			maxw = l.Weight
		}
	}
	return minw, maxw
}

// rescale maps w into [offset, +Inf) given the shift |minw| and the span
// |minw| + maxw.
func rescale(w, shift, span, offset float64) float64 {
	return offset + (w+shift)/span
}

// Normalize rewrites every link weight as
//
//	offset + (w + |minw|) / (|minw| + maxw)
//
// where minw and maxw are the smallest and largest weights in the network.
// The minimum weight lands on offset and every other weight above it.
//
// Normalize is not idempotent: a second call rescales the already rescaled
// weights. [Network.BuildGraph] calls it at most once per network.
//
// If the span |minw| + maxw is zero or not finite, Normalize returns a
// DEGENERATE_WEIGHTS error and leaves all weights untouched.
func (n *Network) Normalize(offset float64) error {
	minw, maxw := weightRange(n.links)
	shift := math.Abs(minw)
	span := shift + maxw
	if span == 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return errs.New(errs.ErrCodeDegenerateWeights,
			"cannot normalize weights in [%g, %g]: span %g", minw, maxw, span)
	}

	for i := range n.links {
		n.links[i].Weight = rescale(n.links[i].Weight, shift, span, offset)
	}
	n.normalized = true
	return nil
}
