package syntax

// Builder assembles a Tree bottom-up while a parser walks the token stream.
// Tokens must be pushed in source order and cover the text without gaps.
type Builder struct {
	tree   *Tree
	stack  []int32
	offset int
}

// Checkpoint marks a position among the children of the current node so a
// node can be wrapped around them later with StartNodeAt.
type Checkpoint struct {
	parent int32
	count  int
}

func NewBuilder(text string) *Builder {
	return &Builder{tree: &Tree{text: text, root: noParent}}
}

func (b *Builder) push(e element) int32 {
	index := int32(len(b.tree.elements))
	if len(b.stack) > 0 {
		e.parent = b.stack[len(b.stack)-1]
		parent := &b.tree.elements[e.parent]
		parent.children = append(parent.children, index)
	} else {
		e.parent = noParent
	}
	b.tree.elements = append(b.tree.elements, e)
	return index
}

func (b *Builder) StartNode(kind Kind) {
	index := b.push(element{kind: kind, rng: EmptyRange(b.offset)})
	if b.tree.root == noParent {
		b.tree.root = index
	}
	b.stack = append(b.stack, index)
}

// Token appends a token of the given byte length at the current offset.
func (b *Builder) Token(kind Kind, length int) {
	index := b.push(element{
		kind:    kind,
		isToken: true,
		rng:     NewRange(b.offset, b.offset+length),
		ordinal: int32(len(b.tree.tokens)),
	})
	b.tree.tokens = append(b.tree.tokens, index)
	b.offset += length
}

func (b *Builder) FinishNode() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	node := &b.tree.elements[top]
	if len(node.children) > 0 {
		node.rng.Start = b.tree.elements[node.children[0]].rng.Start
	}
	node.rng.End = b.offset
}

func (b *Builder) Checkpoint() Checkpoint {
	parent := b.stack[len(b.stack)-1]
	return Checkpoint{parent: parent, count: len(b.tree.elements[parent].children)}
}

// StartNodeAt opens a node that adopts every child of the checkpoint's
// parent added after the checkpoint was taken.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	index := int32(len(b.tree.elements))
	b.tree.elements = append(b.tree.elements, element{
		kind:   kind,
		parent: cp.parent,
		rng:    EmptyRange(b.offset),
	})

	parent := &b.tree.elements[cp.parent]
	adopted := append([]int32(nil), parent.children[cp.count:]...)
	parent.children = append(parent.children[:cp.count], index)

	node := &b.tree.elements[index]
	node.children = adopted
	for _, c := range adopted {
		b.tree.elements[c].parent = index
	}
	b.stack = append(b.stack, index)
}

// Finish closes any open nodes and returns the tree.
func (b *Builder) Finish() *Tree {
	for len(b.stack) > 0 {
		b.FinishNode()
	}
	return b.tree
}
