// Package scene provides a minimal visual-tree node that render options
// attach to.
//
// Render options resolve down the tree with first-non-default-wins
// inheritance: a node's own options win, unset fields fall back to the
// nearest ancestor that sets them. Typical use keys a glyph or atlas cache
// by the fingerprint of a node's effective options.
package scene

import (
	"errors"

	"github.com/gogpu/glyphcache/render"
)

// Node errors.
var (
	// ErrNilChild is returned when attaching a nil child.
	ErrNilChild = errors.New("scene: child must not be nil")

	// ErrCycle is returned when attaching a node to itself or a descendant.
	ErrCycle = errors.New("scene: attach would create a cycle")
)

// Node is a visual-tree element. The zero value is a detached root with
// unset render options.
//
// Node is not safe for concurrent use; the tree has a single owner, the same
// contract as the caches built on top of it.
type Node struct {
	parent   *Node
	children []*Node

	// opts holds the options attached to this node. Unset fields inherit
	// through EffectiveRenderOptions.
	opts render.Options

	// version is incremented on each options change for cache invalidation.
	version uint64
}

// NewNode creates a detached node.
func NewNode() *Node {
	return &Node{}
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children. The returned slice is the node's own
// storage and must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// AppendChild attaches child as the last child of n, detaching it from any
// previous parent first. Attaching n to itself or to one of its descendants
// returns ErrCycle.
func (n *Node) AppendChild(child *Node) error {
	if child == nil {
		return ErrNilChild
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return ErrCycle
		}
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Detach removes the node from its parent. A detached node keeps its
// children and its attached options.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// SetRenderOptions attaches options to the node, replacing any previous
// attachment.
func (n *Node) SetRenderOptions(o render.Options) {
	n.opts = o
	n.version++
}

// RenderOptions returns the options attached directly to this node, without
// inheritance. The zero Options means nothing is attached.
func (n *Node) RenderOptions() render.Options {
	return n.opts
}

// EffectiveRenderOptions resolves the node's options against its ancestor
// chain: each unset field takes the value from the nearest ancestor that
// sets it.
func (n *Node) EffectiveRenderOptions() render.Options {
	merged := n.opts
	for p := n.parent; p != nil; p = p.parent {
		merged = merged.MergeWith(p.opts)
	}
	return merged
}

// Version returns a counter incremented on every options change on this
// node. Callers caching resources keyed by a node's options can use it to
// detect staleness cheaply.
func (n *Node) Version() uint64 {
	return n.version
}
