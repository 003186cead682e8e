package catalogcheck

import (
	"slices"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/contract/errcode"
)

// AliasIndex orders catalog entries by numeric value.
type AliasIndex struct {
	tree  *rbtree.Tree[*aliasNode]
	nodes []*aliasNode
}

type aliasNode struct {
	code  errcode.Code
	entry errcode.Entry
}

// Cmp orders nodes by code value.
func (n *aliasNode) Cmp(other *aliasNode) int {
	switch {
	case n.code < other.code:
		return -1
	case n.code > other.code:
		return 1
	default:
		return 0
	}
}

// NewAliasIndex creates an empty index.
func NewAliasIndex() *AliasIndex {
	return &AliasIndex{tree: rbtree.New[*aliasNode]()}
}

// IndexEntries builds an index over the given entries. Later entries repeating a value
// are dropped.
func IndexEntries(entries []errcode.Entry) *AliasIndex {
	idx := NewAliasIndex()
	for _, e := range entries {
		idx.Insert(e)
	}

	return idx
}

// Insert adds an entry. If its value is already taken it returns the entry holding it
// and false.
func (x *AliasIndex) Insert(e errcode.Entry) (errcode.Entry, bool) {
	node := &aliasNode{code: e.Code, entry: e}
	got := x.tree.InsertReturn(node)
	if got != node {
		return got.entry, false
	}

	x.nodes = append(x.nodes, node)
	return e, true
}

// Lookup finds the entry of a value.
func (x *AliasIndex) Lookup(code errcode.Code) (errcode.Entry, bool) {
	got := x.tree.Search(&aliasNode{code: code})
	if got == nil {
		return errcode.Entry{}, false
	}

	return got.entry, true
}

// Aliased returns the entries known under more than one name, by ascending value.
func (x *AliasIndex) Aliased() []errcode.Entry {
	var res []errcode.Entry
	for _, n := range x.nodes {
		if len(n.entry.Aliases) > 0 {
			res = append(res, n.entry)
		}
	}
	slices.SortFunc(res, func(a, b errcode.Entry) int {
		return int(a.Code) - int(b.Code)
	})

	return res
}
