// Package gazetteer holds the place hierarchy used for address resolution:
// root, an optional metro node, towns and suburbs.
//
// Nodes live in an arena and are addressed by NodeID. Names are not unique
// across the tree (the same suburb name can exist under two towns), so
// lookups by name always return a slice.
//
// A Hierarchy is mutated only while it is being built. After Build returns
// it is safe for concurrent readers.
package gazetteer

import (
	"slices"
	"strings"
)

// Kind tells what level of the gazetteer a node represents.
type Kind int

const (
	Root Kind = iota
	Town
	Suburb
)

func (k Kind) String() string {
	switch k {
	case Root:
		return "root"
	case Town:
		return "town"
	case Suburb:
		return "suburb"
	default:
		return "unknown"
	}
}

// NodeID is the index of a node in the hierarchy arena.
type NodeID int

// NoNode is the parent ID of the root node.
const NoNode NodeID = -1

// Node is a place in the gazetteer tree.
type Node struct {
	ID NodeID

	// Name is normalized: uppercase, spaces replaced with dashes.
	Name string

	Kind Kind

	// Postcode is the 4-digit street code, may be empty.
	Postcode string

	// Municipality is the normalized local municipality name.
	Municipality string

	// SubID and SubCode are AfriGIS subordinate identifiers. They are set
	// only for authoritative reference entries.
	SubID   string
	SubCode string

	// Parent is a weak back reference, NoNode for the root.
	Parent NodeID

	// Children in insertion order.
	Children []NodeID
}

// Hierarchy is a tree of places with a name index.
type Hierarchy struct {
	nodes  []*Node
	byName map[string][]NodeID
	metro  NodeID
}

// New creates a hierarchy that contains only the root node.
func New() *Hierarchy {
	root := &Node{ID: 0, Name: "ROOT", Kind: Root, Parent: NoNode}
	return &Hierarchy{
		nodes:  []*Node{root},
		byName: make(map[string][]NodeID),
		metro:  NoNode,
	}
}

// NormName converts a place name to its canonical token form.
func NormName(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), "-")
}

// Root returns the root node.
func (h *Hierarchy) Root() *Node {
	return h.nodes[0]
}

// Metro returns the metro node, or nil if the hierarchy has none.
func (h *Hierarchy) Metro() *Node {
	return h.Node(h.metro)
}

// Node returns the node with the given ID, or nil.
func (h *Hierarchy) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(h.nodes) {
		return nil
	}
	return h.nodes[id]
}

// Parent returns the parent of n, or nil for the root and for nil.
func (h *Hierarchy) Parent(n *Node) *Node {
	if n == nil {
		return nil
	}
	return h.Node(n.Parent)
}

// Len returns the number of nodes including the root.
func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

// AddNode attaches a copy of n under parent (the root if parent is nil)
// and returns the stored node. If parent already has a child with the
// same name and municipality, that child is returned and nothing is added.
func (h *Hierarchy) AddNode(parent *Node, n Node) *Node {
	if parent == nil {
		parent = h.Root()
	}
	for _, id := range parent.Children {
		c := h.nodes[id]
		if c.Name == n.Name && c.Municipality == n.Municipality {
			return c
		}
	}

	node := n
	node.ID = NodeID(len(h.nodes))
	node.Parent = parent.ID
	node.Children = nil
	h.nodes = append(h.nodes, &node)
	parent.Children = append(parent.Children, node.ID)
	h.byName[node.Name] = append(h.byName[node.Name], node.ID)
	return &node
}

// SetMetro marks n as the metro node.
func (h *Hierarchy) SetMetro(n *Node) {
	if n == nil {
		h.metro = NoNode
		return
	}
	h.metro = n.ID
}

// FindNodeByName returns every node with the given name in insertion
// order. The name is normalized first, so "Cape Town" finds CAPE-TOWN.
func (h *Hierarchy) FindNodeByName(name string) []*Node {
	ids := h.byName[NormName(name)]
	if len(ids) == 0 {
		return nil
	}
	res := make([]*Node, len(ids))
	for i, id := range ids {
		res[i] = h.nodes[id]
	}
	return res
}

// IsAncestor reports whether anc is on the parent chain of n.
// It returns false when either node is nil.
func (h *Hierarchy) IsAncestor(anc, n *Node) bool {
	if anc == nil || n == nil {
		return false
	}
	visited := make(map[NodeID]struct{})
	for p := h.Parent(n); p != nil; p = h.Parent(p) {
		if _, ok := visited[p.ID]; ok {
			return false
		}
		visited[p.ID] = struct{}{}
		if p.ID == anc.ID {
			return true
		}
	}
	return false
}

// Depth returns the largest root-to-leaf distance. Depth is computed in
// pre-order from recorded parent depths, so a node whose Parent field does
// not point to an already visited node is reported as an error.
func (h *Hierarchy) Depth() (int, error) {
	depths := map[NodeID]int{0: 0}
	var res int
	var err error
	h.Walk(func(n *Node) bool {
		if n.Kind == Root {
			return true
		}
		d, ok := depths[n.Parent]
		if !ok {
			err = InconsistentParentError(n, h.Node(n.Parent))
			return false
		}
		d++
		depths[n.ID] = d
		res = max(res, d)
		return true
	})
	if err != nil {
		return 0, err
	}
	return res, nil
}

// Walk visits nodes in pre-order, children in insertion order, until fn
// returns false.
func (h *Hierarchy) Walk(fn func(*Node) bool) {
	stack := []NodeID{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := h.nodes[id]
		if !fn(n) {
			return
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}

// Ancestry returns the chain from the top-level place down to n,
// excluding the root.
func (h *Hierarchy) Ancestry(n *Node) []*Node {
	var res []*Node
	visited := make(map[NodeID]struct{})
	for cur := n; cur != nil && cur.Kind != Root; cur = h.Parent(cur) {
		if _, ok := visited[cur.ID]; ok {
			break
		}
		visited[cur.ID] = struct{}{}
		res = append(res, cur)
	}
	slices.Reverse(res)
	return res
}

// Names returns the sets of suburb and town names. Towns that carry an
// AfriGIS subordinate ID are also reference suburbs and appear in both.
func (h *Hierarchy) Names() (suburbs, towns map[string]struct{}) {
	suburbs = make(map[string]struct{})
	towns = make(map[string]struct{})
	for _, n := range h.nodes[1:] {
		switch n.Kind {
		case Suburb:
			suburbs[n.Name] = struct{}{}
		case Town:
			towns[n.Name] = struct{}{}
			if n.SubID != "" {
				suburbs[n.Name] = struct{}{}
			}
		}
	}
	return suburbs, towns
}

// MultiWordNames returns place names made of several words, with spaces
// in place of dashes, sorted.
func (h *Hierarchy) MultiWordNames() []string {
	var res []string
	for name := range h.byName {
		if strings.Contains(name, "-") {
			res = append(res, strings.ReplaceAll(name, "-", " "))
		}
	}
	slices.Sort(res)
	return res
}
