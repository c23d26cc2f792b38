// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package walk is the Tree Walker: it visits every node of a document tree,
parent before children, and rewrites the text of each node that has some.

The walker knows nothing about the document format. Any tree whose nodes can
report their text, replace it, and list their children can be walked.
*/
package walk

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Node is a single element of a document tree.
type Node interface {
	// Text returns the node's text and whether the node carries text at all.
	Text() (string, bool)
	// SetText replaces the node's text. Called only for nodes that carry text.
	SetText(string)
	// Children returns the node's children in document order.
	Children() []Node
}

// RewriteFunc maps the text of one node to its replacement.
type RewriteFunc func(string) string

type Opts struct {
	// Parallel walks each root of a forest in its own goroutine.
	Parallel bool
	// MaxConcurrency bounds the goroutines used when Parallel is set;
	// zero means runtime.GOMAXPROCS(0).
	MaxConcurrency int
}

// Walk rewrites root and all of its descendants in place, depth-first.
// Children are visited whether or not their parent carries text.
func Walk(root Node, rewrite RewriteFunc) {
	if root == nil {
		return
	}
	if text, ok := root.Text(); ok {
		root.SetText(rewrite(text))
	}
	for _, child := range root.Children() {
		Walk(child, rewrite)
	}
}

// WalkAll walks every root of a forest. Sibling subtrees share nothing but
// rewrite, which must be safe for concurrent use when opts.Parallel is set.
func WalkAll(roots []Node, rewrite RewriteFunc, opts Opts) {
	if !opts.Parallel || len(roots) < 2 {
		for _, root := range roots {
			Walk(root, rewrite)
		}
		return
	}

	limit := opts.MaxConcurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	var group errgroup.Group
	group.SetLimit(limit)

	for _, root := range roots {
		root := root
		group.Go(func() error {
			Walk(root, rewrite)
			return nil
		})
	}

	// Walk has no failure path
	_ = group.Wait()
}
