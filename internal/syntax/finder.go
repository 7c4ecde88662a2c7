package syntax

// FindNodes returns the chain of nodes whose range contains offset,
// inclusive of the end, starting at root. The last element is the most
// deeply nested one. When two siblings share the offset as a boundary the
// left one is followed.
func FindNodes(root Node, offset int) []Node {
	if !root.Range().ContainsInclusive(offset) {
		return nil
	}

	result := []Node{root}
	current := root
	for {
		next, ok := Node{}, false
		for _, child := range current.Children() {
			if child.Range().ContainsInclusive(offset) {
				next, ok = child, true
				break
			}
		}
		if !ok {
			return result
		}
		result = append(result, next)
		current = next
	}
}

// FindNode returns the deepest node containing offset.
func FindNode(root Node, offset int) (Node, bool) {
	nodes := FindNodes(root, offset)
	if len(nodes) == 0 {
		return Node{}, false
	}
	return nodes[len(nodes)-1], true
}
