// Package medindex provides a prefix index over medicine names. Names
// are stored under their lowercase form but returned in their original
// spelling, so lookups are case-insensitive while display stays intact.
package medindex

import (
	"sort"
	"strings"
)

type node struct {
	children map[rune]*node
	end      bool
	word     string // original-case spelling when end is true
}

func newNode() *node {
	return &node{children: map[rune]*node{}}
}

// Index is a trie keyed by the lowercase characters of inserted names.
// The zero value is not usable; construct with New. No deletion is
// supported: registrations live for the process lifetime.
type Index struct {
	root *node
}

func New() *Index {
	return &Index{root: newNode()}
}

// Insert adds name to the index. Inserting the same name twice is
// idempotent: the terminal marker is overwritten with the same value.
func (ix *Index) Insert(name string) {
	cur := ix.root
	for _, c := range strings.ToLower(name) {
		next, ok := cur.children[c]
		if !ok {
			next = newNode()
			cur.children[c] = next
		}
		cur = next
	}
	cur.end = true
	cur.word = name
}

// Search returns every stored original-case name whose lowercase form
// starts with prefix, in lexical order of the lowercase spellings. An
// unmatched prefix yields an empty result.
func (ix *Index) Search(prefix string) []string {
	cur := ix.root
	for _, c := range strings.ToLower(prefix) {
		next, ok := cur.children[c]
		if !ok {
			return nil
		}
		cur = next
	}
	var out []string
	dfs(cur, &out)
	return out
}

func dfs(n *node, out *[]string) {
	if n.end {
		*out = append(*out, n.word)
	}
	edges := make([]rune, 0, len(n.children))
	for c := range n.children {
		edges = append(edges, c)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	for _, c := range edges {
		dfs(n.children[c], out)
	}
}
