// Package unionfind implements a disjoint-set forest with union by height
// and path compression.
//
// A UnionFind is not safe for concurrent use.
package unionfind

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for an element outside [0, Len()).
var ErrOutOfRange = errors.New("unionfind: index out of range")

type node struct {
	parent int
	height int
}

// UnionFind partitions the elements 0..n-1 into disjoint sets.
type UnionFind struct {
	nodes      []node
	components int
}

// New returns n singleton sets. A negative n is treated as zero.
func New(n int) *UnionFind {
	n = max(n, 0)
	nodes := make([]node, n)
	for i := range nodes {
		nodes[i] = node{parent: i, height: 1}
	}
	return &UnionFind{nodes: nodes, components: n}
}

// Len returns the number of elements.
func (u *UnionFind) Len() int { return len(u.nodes) }

// Components returns the number of disjoint sets.
func (u *UnionFind) Components() int { return u.components }

// Find returns the representative of the set containing x.
func (u *UnionFind) Find(x int) (int, error) {
	if err := u.check(x); err != nil {
		return 0, err
	}
	return u.find(x), nil
}

// Union merges the sets containing x and y. It reports whether they were
// distinct.
func (u *UnionFind) Union(x, y int) (bool, error) {
	if err := u.check(x); err != nil {
		return false, err
	}
	if err := u.check(y); err != nil {
		return false, err
	}

	rx, ry := u.find(x), u.find(y)
	if rx == ry {
		return false, nil
	}
	if u.nodes[rx].height < u.nodes[ry].height {
		rx, ry = ry, rx
	}
	u.nodes[ry].parent = rx
	if u.nodes[rx].height == u.nodes[ry].height {
		u.nodes[rx].height++
	}
	u.components--
	return true, nil
}

// Connected reports whether x and y are in the same set.
func (u *UnionFind) Connected(x, y int) (bool, error) {
	rx, err := u.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := u.Find(y)
	if err != nil {
		return false, err
	}
	return rx == ry, nil
}

func (u *UnionFind) check(x int) error {
	if x < 0 || x >= len(u.nodes) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, x, len(u.nodes))
	}
	return nil
}

// find compresses the path from x to its root iteratively.
func (u *UnionFind) find(x int) int {
	root := x
	for u.nodes[root].parent != root {
		root = u.nodes[root].parent
	}
	for x != root {
		next := u.nodes[x].parent
		u.nodes[x].parent = root
		x = next
	}
	return root
}
