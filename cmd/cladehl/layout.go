package main

import (
	"fmt"
	"math"

	"github.com/treeviewer/highlight"
	"github.com/treeviewer/highlight/tree"
)

const (
	// levelSpacing is the world distance between consecutive tree levels.
	levelSpacing = 40.0
	// leafSpacing is the distance between neighbouring leaves in the
	// rectangular layout.
	leafSpacing = 12.0
)

// place lays the tree out in the named coordinate system. Leaves are
// spread evenly; internal nodes sit at the mean position of their leaves.
func place(kind string, root *tree.Node) (highlight.CoordinateMap, error) {
	leaves := root.Leaves()
	order := make(map[highlight.NodeID]float64, len(leaves))
	for i, l := range leaves {
		order[l.ID()] = float64(i)
	}
	mean := func(n *tree.Node) float64 {
		var sum float64
		ls := n.Leaves()
		for _, l := range ls {
			sum += order[l.ID()]
		}
		return sum / float64(len(ls))
	}

	coords := highlight.CoordinateMap{Points: make(map[highlight.NodeID]highlight.Point)}
	switch kind {
	case "rectangular":
		coords.Layout = highlight.RectangularLayout{Direction: highlight.Pt(1, 0)}
		root.Walk(func(n *tree.Node) bool {
			coords.Points[n.ID()] = highlight.Pt(levelSpacing*float64(n.Depth()), leafSpacing*mean(n))
			return true
		})

	case "circular":
		step := 2 * math.Pi / float64(len(leaves))
		coords.Layout = highlight.CircularLayout{}
		root.Walk(func(n *tree.Node) bool {
			coords.Points[n.ID()] = highlight.Polar(highlight.Point{}, levelSpacing*float64(n.Depth()), step*mean(n))
			return true
		})

	case "radial":
		// Each child hangs off its parent at the mean angle of its leaves,
		// so subtrees fan out without a common center.
		step := 2 * math.Pi / float64(len(leaves))
		coords.Layout = highlight.RadialLayout{}
		coords.Points[root.ID()] = highlight.Point{}
		root.Walk(func(n *tree.Node) bool {
			origin := coords.Points[n.ID()]
			for _, c := range n.Nodes() {
				coords.Points[c.ID()] = highlight.Polar(origin, levelSpacing, step*mean(c))
			}
			return true
		})

	default:
		return highlight.CoordinateMap{}, fmt.Errorf("cladehl: unknown layout %q", kind)
	}
	return coords, nil
}
