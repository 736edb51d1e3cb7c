// Package trie implements the prefix tree that backs the spellfix dictionary.
//
// One rune per node. A node is terminal when a word ends on it. The tree is
// built once and then only read, so it carries no locking.
package trie

import (
	mapset "github.com/deckarep/golang-set/v2"
)

type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie stores a set of words keyed rune by rune.
type Trie struct {
	root  *node
	count int
}

// Predicate reports whether a word should be kept by FilterBy.
type Predicate func(word string) bool

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds word and reports whether it was not present before.
func (t *Trie) Insert(word string) bool {
	current := t.root
	for _, r := range word {
		next, ok := current.children[r]
		if !ok {
			next = newNode()
			current.children[r] = next
		}
		current = next
	}
	if current.terminal {
		return false
	}
	current.terminal = true
	t.count++
	return true
}

// Search reports whether word was inserted. It walks only the path of word.
func (t *Trie) Search(word string) bool {
	current := t.root
	for _, r := range word {
		next, ok := current.children[r]
		if !ok {
			return false
		}
		current = next
	}
	return current.terminal
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.count
}

// FilterBy walks the whole tree and returns every word for which keep
// returns true. Iteration order is unspecified.
func (t *Trie) FilterBy(keep Predicate) mapset.Set[string] {
	words := mapset.NewThreadUnsafeSet[string]()
	if keep == nil || t.count == 0 {
		return words
	}
	buf := make([]rune, 0, 32)
	t.walk(t.root, buf, func(word string) {
		if keep(word) {
			words.Add(word)
		}
	})
	return words
}

// Walk calls visit for every stored word.
func (t *Trie) Walk(visit func(word string)) {
	if visit == nil {
		return
	}
	t.walk(t.root, make([]rune, 0, 32), visit)
}

func (t *Trie) walk(n *node, prefix []rune, visit func(string)) {
	if n.terminal {
		visit(string(prefix))
	}
	for r, child := range n.children {
		t.walk(child, append(prefix, r), visit)
	}
}
