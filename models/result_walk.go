package models

import "fmt"

// ResultNode describes the position of a node handed to a walker.
type ResultNode struct {
	// Label is the object key, "[i]" for array items, or "" for the root.
	Label string

	// Depth is 0 for the root.
	Depth int

	Value OperationResult
}

// LeafFunc renders a scalar node.
type LeafFunc[T any] func(node ResultNode) T

// BranchFunc renders a container node from its already rendered children.
type BranchFunc[T any] func(node ResultNode, children []T) T

// WalkResult folds r into a T. Scalars go to leaf; objects and arrays go to
// branch after every child has been walked. Arrays label their items
// positionally. Nodes deeper than maxDepth are not descended into: they are
// passed to leaf with Truncated set via [ResultNode.Truncated].
func WalkResult[T any](r OperationResult, maxDepth int, leaf LeafFunc[T], branch BranchFunc[T]) T {
	return walk(ResultNode{Value: r}, maxDepth, leaf, branch)
}

// Truncated reports whether the walker stopped descending at this node.
func (n ResultNode) Truncated(maxDepth int) bool {
	return !n.Value.IsScalar() && n.Depth >= maxDepth
}

func walk[T any](node ResultNode, maxDepth int, leaf LeafFunc[T], branch BranchFunc[T]) T {
	if node.Value.IsScalar() || node.Depth >= maxDepth {
		return leaf(node)
	}

	var children []T
	switch node.Value.Kind {
	case ResultObject:
		children = make([]T, 0, len(node.Value.Fields))
		for _, f := range node.Value.Fields {
			children = append(children, walk(ResultNode{
				Label: f.Key,
				Depth: node.Depth + 1,
				Value: f.Value,
			}, maxDepth, leaf, branch))
		}
	case ResultArray:
		children = make([]T, 0, len(node.Value.Items))
		for i, item := range node.Value.Items {
			children = append(children, walk(ResultNode{
				Label: fmt.Sprintf("[%d]", i),
				Depth: node.Depth + 1,
				Value: item,
			}, maxDepth, leaf, branch))
		}
	}

	return branch(node, children)
}
