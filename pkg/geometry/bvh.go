package geometry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrEmptyBVH is returned when a BVH is built from no objects
var ErrEmptyBVH = errors.New("no objects to build a BVH from")

// BVHNode is a node in the Bounding Volume Hierarchy. Children are either
// further nodes or the scene objects themselves. A node built from a single
// object has the same object on both sides.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB

	single bool // Left and Right are the same object
}

// bvhEntry caches an object's box so the build never asks twice
type bvhEntry struct {
	object core.Hittable
	box    core.AABB
}

// NewBVH builds a hierarchy over objects using their bounding boxes over
// [time0, time1]. Each level splits along an axis drawn from random.
func NewBVH(objects []core.Hittable, time0, time1 float64, random *rand.Rand) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("object %d (%T) has no bounding box", i, object)
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	node, _ := buildBVH(entries, random)
	return node, nil
}

// buildBVH recursively builds the tree with median splits on a random axis
func buildBVH(entries []bvhEntry, random *rand.Rand) (*BVHNode, core.AABB) {
	axis := random.Intn(3)
	less := func(a, b bvhEntry) bool {
		return a.box.Min.Axis(axis) < b.box.Min.Axis(axis)
	}

	node := &BVHNode{}
	var leftBox, rightBox core.AABB

	switch len(entries) {
	case 1:
		node.Left, node.Right = entries[0].object, entries[0].object
		node.single = true
		leftBox, rightBox = entries[0].box, entries[0].box
	case 2:
		first, second := entries[0], entries[1]
		if !less(first, second) {
			first, second = second, first
		}
		node.Left, node.Right = first.object, second.object
		leftBox, rightBox = first.box, second.box
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return less(entries[i], entries[j])
		})

		mid := len(entries) / 2
		left, lb := buildBVH(entries[:mid], random)
		right, rb := buildBVH(entries[mid:], random)
		node.Left, node.Right = left, right
		leftBox, rightBox = lb, rb
	}

	node.Box = core.SurroundingBox(leftBox, rightBox)
	return node, node.Box
}

// Hit tests the node's box, then the left child over the whole window and
// the right child only up to the left child's hit. A hit on the right is
// therefore never farther than one on the left and wins.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)

	rightMax := tMax
	if hitLeft {
		rightMax = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, tMin, rightMax, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the box computed at build time
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	Nodes    int     // Interior nodes
	Leaves   int     // Object references at the bottom of the tree
	MaxDepth int     // Deepest interior node
	AvgDepth float64 // Average leaf depth
}

// Stats walks the tree and collects structure statistics for logging
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	if stats.Leaves > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.Leaves)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []core.Hittable{n.Left}
	if !n.single {
		children = append(children, n.Right)
	}

	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
			stats.AvgDepth += float64(depth + 1)
		}
	}
}
