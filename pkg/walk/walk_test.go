// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package walk_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"carvel.dev/mdbook-variables/pkg/walk"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type testNode struct {
	Name    string
	Content string
	HasText bool
	Kids    []*testNode
}

var _ walk.Node = &testNode{}

func (n *testNode) Text() (string, bool) { return n.Content, n.HasText }
func (n *testNode) SetText(text string)  { n.Content = text }

func (n *testNode) Children() []walk.Node {
	var result []walk.Node
	for _, kid := range n.Kids {
		result = append(result, kid)
	}
	return result
}

func textNode(name, content string, kids ...*testNode) *testNode {
	return &testNode{Name: name, Content: content, HasText: true, Kids: kids}
}

func TestWalkVisitsParentBeforeChildren(t *testing.T) {
	root := textNode("root", "Hello ${{who}}",
		textNode("sub", "${{who}} again",
			textNode("subsub", "deep")),
		textNode("sibling", "last"))

	var visited []string
	walk.Walk(root, func(text string) string {
		visited = append(visited, text)
		return strings.ReplaceAll(text, "${{who}}", "World")
	})

	assert.Equal(t, []string{"Hello ${{who}}", "${{who}} again", "deep", "last"}, visited)
	assert.Equal(t, "Hello World", root.Content)
	assert.Equal(t, "World again", root.Kids[0].Content)
}

func TestWalkDescendsIntoNodesWithoutText(t *testing.T) {
	separator := &testNode{Name: "separator", Content: "untouched"}
	container := &testNode{Name: "container", Kids: []*testNode{textNode("leaf", "a")}}
	root := textNode("root", "r", separator, container)

	walk.Walk(root, strings.ToUpper)

	assert.Equal(t, "R", root.Content)
	assert.Equal(t, "untouched", separator.Content)
	assert.Equal(t, "", container.Content)
	assert.Equal(t, "A", container.Kids[0].Content)
}

func TestWalkNil(t *testing.T) {
	walk.Walk(nil, func(string) string { panic("unexpected rewrite") })
}

func TestWalkAllParallelMatchesSequential(t *testing.T) {
	build := func() []*testNode {
		var roots []*testNode
		for i := 0; i < 20; i++ {
			roots = append(roots, textNode(fmt.Sprintf("ch%d", i), fmt.Sprintf("chapter %d", i),
				textNode(fmt.Sprintf("ch%d.1", i), "section"),
				&testNode{Name: "separator"}))
		}
		return roots
	}
	asNodes := func(roots []*testNode) []walk.Node {
		var result []walk.Node
		for _, root := range roots {
			result = append(result, root)
		}
		return result
	}

	var mu sync.Mutex
	var calls int
	rewrite := func(text string) string {
		mu.Lock()
		calls++
		mu.Unlock()
		return "<" + text + ">"
	}

	sequential := build()
	walk.WalkAll(asNodes(sequential), rewrite, walk.Opts{})

	parallel := build()
	walk.WalkAll(asNodes(parallel), rewrite, walk.Opts{Parallel: true, MaxConcurrency: 4})

	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Fatalf("parallel walk differs (-sequential +parallel):\n%s", diff)
	}
	assert.Equal(t, 80, calls)
	assert.Equal(t, "<chapter 7>", parallel[7].Content)
}
