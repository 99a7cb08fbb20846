package shellext

// Package file submenu.go contains the menu tree and the composite action children.

import (
	"iter"
	"slices"
	"sync/atomic"
)

// CommandNode is an action resolved against one selection.
type CommandNode struct {
	ID          ActionID
	Label       string
	State       Visibility
	HasChildren bool
	Children    []CommandNode // Children are only set for composite actions.
}

// Node resolves the action, and any child actions, for the selection.
func (e *Engine) Node(id ActionID, sel Selection) CommandNode {
	n := CommandNode{
		ID:          id,
		Label:       e.Label(id, sel),
		State:       e.Visibility(id, sel),
		HasChildren: Describe(id).Composite,
	}
	if n.HasChildren {
		n.Children = slices.Collect(e.Children(id, sel))
	}
	return n
}

// Children returns the child actions of a composite action resolved against
// the same selection. The sequence can be ranged over any number of times
// and is empty for an action without children.
func (e *Engine) Children(id ActionID, sel Selection) iter.Seq[CommandNode] {
	ids := children[id]
	return func(yield func(CommandNode) bool) {
		for _, child := range ids {
			if !yield(e.Node(child, sel)) {
				return
			}
		}
	}
}

// Menu is the tree of top-level actions built for one menu request.
// It is a counted lifecycle object that must be closed once the host has rendered it.
type Menu struct {
	nodes  []CommandNode
	life   *Lifecycle
	closed atomic.Bool
}

// Build resolves every top-level action, in menu order, against the selection.
func (e *Engine) Build(sel Selection) *Menu {
	ids := TopLevel()
	m := &Menu{nodes: make([]CommandNode, 0, len(ids)), life: e.life}
	for _, id := range ids {
		m.nodes = append(m.nodes, e.Node(id, sel))
	}
	m.life.acquire()
	return m
}

// Nodes returns the top-level nodes in menu order.
func (m *Menu) Nodes() []CommandNode {
	return m.nodes
}

// All returns the top-level nodes as a sequence.
func (m *Menu) All() iter.Seq[CommandNode] {
	return slices.Values(m.nodes)
}

// Close releases the menu. Only the first call has an effect.
func (m *Menu) Close() error {
	if m.closed.CompareAndSwap(false, true) {
		m.nodes = nil
		m.life.release()
	}
	return nil
}
