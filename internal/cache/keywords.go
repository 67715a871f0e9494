// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package cache

import "strings"

// KeywordMatcher is an Aho-Corasick automaton over groups of keywords.
// It answers "which keyword groups occur anywhere in this text" in a single
// pass over the text, independent of how many keywords are registered.
//
// Matching is case-insensitive. A matcher is immutable once built and is
// safe for concurrent use without locking.
//
// Example:
//
//	m := NewKeywordMatcher(map[string][]string{
//	    "geo_hint": {"coord", "gps", "geo"},
//	    "non_geo":  {"email", "ip"},
//	})
//	m.Contains("gps_northing", "geo_hint") // true
type KeywordMatcher struct {
	root     *kwNode
	keywords int
}

// kwNode is a trie node with a failure link.
type kwNode struct {
	children map[rune]*kwNode
	failure  *kwNode
	// groups ending at this node, including those inherited through failure links
	groups []string
}

// NewKeywordMatcher builds a matcher from keyword groups. Empty keywords are
// ignored. A keyword may belong to more than one group.
func NewKeywordMatcher(groups map[string][]string) *KeywordMatcher {
	m := &KeywordMatcher{root: newKWNode()}

	for group, words := range groups {
		for _, w := range words {
			if w == "" {
				continue
			}
			m.insert(strings.ToLower(w), group)
			m.keywords++
		}
	}

	m.link()
	return m
}

func newKWNode() *kwNode {
	return &kwNode{children: make(map[rune]*kwNode)}
}

func (m *KeywordMatcher) insert(word, group string) {
	node := m.root
	for _, ch := range word {
		next, ok := node.children[ch]
		if !ok {
			next = newKWNode()
			node.children[ch] = next
		}
		node = next
	}
	node.groups = appendUnique(node.groups, group)
}

// link builds failure links breadth-first and merges output groups.
func (m *KeywordMatcher) link() {
	queue := make([]*kwNode, 0, len(m.root.children))
	for _, child := range m.root.children {
		child.failure = m.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = m.root
				continue
			}
			child.failure = fail.children[ch]
			for _, g := range child.failure.groups {
				child.groups = appendUnique(child.groups, g)
			}
		}
	}
}

// Len returns the number of registered keywords.
func (m *KeywordMatcher) Len() int {
	return m.keywords
}

// Groups returns the set of groups with at least one keyword occurring in text.
func (m *KeywordMatcher) Groups(text string) map[string]struct{} {
	found := make(map[string]struct{})
	m.walk(text, func(groups []string) bool {
		for _, g := range groups {
			found[g] = struct{}{}
		}
		return true
	})
	return found
}

// Contains reports whether any keyword of group occurs in text.
func (m *KeywordMatcher) Contains(text, group string) bool {
	hit := false
	m.walk(text, func(groups []string) bool {
		for _, g := range groups {
			if g == group {
				hit = true
				return false
			}
		}
		return true
	})
	return hit
}

// walk feeds text through the automaton, calling visit with the groups that
// end at each position. Returning false from visit stops the walk.
func (m *KeywordMatcher) walk(text string, visit func(groups []string) bool) {
	if m.keywords == 0 {
		return
	}

	node := m.root
	for _, ch := range strings.ToLower(text) {
		for node != m.root && node.children[ch] == nil {
			node = node.failure
		}
		if next, ok := node.children[ch]; ok {
			node = next
		}
		if len(node.groups) > 0 && !visit(node.groups) {
			return
		}
	}
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}
