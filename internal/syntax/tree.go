package syntax

import "sort"

// Kind identifies a node or token. Each grammar defines its own closed set.
type Kind uint16

const noParent int32 = -1

type element struct {
	kind     Kind
	isToken  bool
	parent   int32
	rng      TextRange
	children []int32
	// position of a token within Tree.tokens
	ordinal int32
}

// Tree is an immutable concrete syntax tree stored in a flat arena.
// Parent links are arena indices, so handles never own their parents.
type Tree struct {
	text     string
	elements []element
	tokens   []int32
	root     int32
}

func (t *Tree) Text() string {
	return t.text
}

func (t *Tree) Root() Node {
	return Node{tree: t, index: t.root}
}

// TokenAtOffset returns the tokens touching offset. Inside a token both
// results are that token; on a boundary between two tokens left and right
// differ. ok is false for an empty tree or an offset past the end.
func (t *Tree) TokenAtOffset(offset int) (left, right Token, ok bool) {
	n := len(t.tokens)
	if n == 0 || offset < 0 {
		return Token{}, Token{}, false
	}

	i := sort.Search(n, func(i int) bool {
		return t.elements[t.tokens[i]].rng.End > offset
	})
	if i == n {
		last := t.tokens[n-1]
		if t.elements[last].rng.End == offset {
			tok := Token{tree: t, index: last}
			return tok, tok, true
		}
		return Token{}, Token{}, false
	}

	tok := Token{tree: t, index: t.tokens[i]}
	if t.elements[t.tokens[i]].rng.Start < offset || i == 0 {
		return tok, tok, true
	}

	prev := Token{tree: t, index: t.tokens[i-1]}
	return prev, tok, true
}

// Node is a handle to an interior element of a Tree. The zero value is
// not a valid node.
type Node struct {
	tree  *Tree
	index int32
}

func (n Node) IsValid() bool {
	return n.tree != nil
}

func (n Node) Tree() *Tree {
	return n.tree
}

func (n Node) data() *element {
	return &n.tree.elements[n.index]
}

func (n Node) Kind() Kind {
	return n.data().kind
}

func (n Node) Range() TextRange {
	return n.data().rng
}

func (n Node) Text() string {
	r := n.Range()
	return n.tree.text[r.Start:r.End]
}

func (n Node) Parent() (Node, bool) {
	p := n.data().parent
	if p == noParent {
		return Node{}, false
	}
	return Node{tree: n.tree, index: p}, true
}

// Ancestors yields the parent chain starting with n itself.
func (n Node) Ancestors() []Node {
	var result []Node
	for cur, ok := n, true; ok; cur, ok = cur.Parent() {
		result = append(result, cur)
	}
	return result
}

// Children returns the child nodes of n, skipping tokens.
func (n Node) Children() []Node {
	var result []Node
	for _, c := range n.data().children {
		if !n.tree.elements[c].isToken {
			result = append(result, Node{tree: n.tree, index: c})
		}
	}
	return result
}

// ChildrenWithTokens returns every direct child of n in source order.
func (n Node) ChildrenWithTokens() []Element {
	children := n.data().children
	result := make([]Element, len(children))
	for i, c := range children {
		result[i] = Element{tree: n.tree, index: c}
	}
	return result
}

// ChildTokens returns the tokens directly below n.
func (n Node) ChildTokens() []Token {
	var result []Token
	for _, c := range n.data().children {
		if n.tree.elements[c].isToken {
			result = append(result, Token{tree: n.tree, index: c})
		}
	}
	return result
}

// Descendants returns n and every node below it in pre-order.
func (n Node) Descendants() []Node {
	result := []Node{n}
	for _, c := range n.Children() {
		result = append(result, c.Descendants()...)
	}
	return result
}

// DescendantsWithTokens returns n and every element below it in pre-order.
func (n Node) DescendantsWithTokens() []Element {
	result := []Element{{tree: n.tree, index: n.index}}
	for _, c := range n.ChildrenWithTokens() {
		if child, ok := c.AsNode(); ok {
			result = append(result, child.DescendantsWithTokens()...)
		} else {
			result = append(result, c)
		}
	}
	return result
}

// Tokens returns every token below n in source order.
func (n Node) Tokens() []Token {
	first, ok := n.FirstToken()
	if !ok {
		return nil
	}
	last, _ := n.LastToken()
	lo := n.tree.elements[first.index].ordinal
	hi := n.tree.elements[last.index].ordinal
	result := make([]Token, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		result = append(result, Token{tree: n.tree, index: n.tree.tokens[i]})
	}
	return result
}

func (n Node) FirstToken() (Token, bool) {
	for _, c := range n.ChildrenWithTokens() {
		if tok, ok := c.AsToken(); ok {
			return tok, true
		}
		child, _ := c.AsNode()
		if tok, ok := child.FirstToken(); ok {
			return tok, true
		}
	}
	return Token{}, false
}

func (n Node) LastToken() (Token, bool) {
	children := n.ChildrenWithTokens()
	for i := len(children) - 1; i >= 0; i-- {
		if tok, ok := children[i].AsToken(); ok {
			return tok, true
		}
		child, _ := children[i].AsNode()
		if tok, ok := child.LastToken(); ok {
			return tok, true
		}
	}
	return Token{}, false
}

// Token is a handle to a leaf element of a Tree.
type Token struct {
	tree  *Tree
	index int32
}

func (t Token) IsValid() bool {
	return t.tree != nil
}

func (t Token) data() *element {
	return &t.tree.elements[t.index]
}

func (t Token) Kind() Kind {
	return t.data().kind
}

func (t Token) Range() TextRange {
	return t.data().rng
}

func (t Token) Text() string {
	r := t.Range()
	return t.tree.text[r.Start:r.End]
}

// Parent returns the node owning t. Every token has one.
func (t Token) Parent() Node {
	return Node{tree: t.tree, index: t.data().parent}
}

func (t Token) Prev() (Token, bool) {
	i := t.data().ordinal - 1
	if i < 0 {
		return Token{}, false
	}
	return Token{tree: t.tree, index: t.tree.tokens[i]}, true
}

func (t Token) Next() (Token, bool) {
	i := int(t.data().ordinal) + 1
	if i >= len(t.tree.tokens) {
		return Token{}, false
	}
	return Token{tree: t.tree, index: t.tree.tokens[i]}, true
}

// Element is either a Node or a Token.
type Element struct {
	tree  *Tree
	index int32
}

func (e Element) data() *element {
	return &e.tree.elements[e.index]
}

func (e Element) Kind() Kind {
	return e.data().kind
}

func (e Element) Range() TextRange {
	return e.data().rng
}

func (e Element) IsToken() bool {
	return e.data().isToken
}

func (e Element) AsNode() (Node, bool) {
	if e.tree == nil || e.data().isToken {
		return Node{}, false
	}
	return Node{tree: e.tree, index: e.index}, true
}

func (e Element) AsToken() (Token, bool) {
	if e.tree == nil || !e.data().isToken {
		return Token{}, false
	}
	return Token{tree: e.tree, index: e.index}, true
}
