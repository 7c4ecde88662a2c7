package bibtex

import "github.com/efoerster/texlab/internal/syntax"

func is(n syntax.Node, kind syntax.Kind) bool {
	return n.IsValid() && n.Kind() == kind
}

func childToken(n syntax.Node, match func(syntax.Kind) bool) (syntax.Token, bool) {
	for _, tok := range n.ChildTokens() {
		if match(tok.Kind()) {
			return tok, true
		}
	}
	return syntax.Token{}, false
}

func childKey(n syntax.Node) (Key, bool) {
	for _, child := range n.Children() {
		if child.Kind() == KindKey {
			return Key{child}, true
		}
	}
	return Key{}, false
}

// value returns the first value node below n.
func value(n syntax.Node) (syntax.Node, bool) {
	for _, child := range n.Children() {
		switch child.Kind() {
		case KindLiteral, KindCommand, KindBraceGroup, KindQuoteGroup, KindConcat:
			return child, true
		}
	}
	return syntax.Node{}, false
}

// Comment is text outside of any entry.
type Comment struct {
	syntax.Node
}

func CastComment(n syntax.Node) (Comment, bool) {
	if !is(n, KindJunk) {
		return Comment{}, false
	}
	return Comment{n}, true
}

type Key struct {
	syntax.Node
}

func CastKey(n syntax.Node) (Key, bool) {
	if !is(n, KindKey) {
		return Key{}, false
	}
	return Key{n}, true
}

func (k Key) Word() (syntax.Token, bool) {
	return childToken(k.Node, func(kind syntax.Kind) bool { return kind == KindWord })
}

type Preamble struct {
	syntax.Node
}

func CastPreamble(n syntax.Node) (Preamble, bool) {
	if !is(n, KindPreamble) {
		return Preamble{}, false
	}
	return Preamble{n}, true
}

func (p Preamble) Type() (syntax.Token, bool) {
	return childToken(p.Node, func(kind syntax.Kind) bool { return kind == KindPreambleType })
}

func (p Preamble) Value() (syntax.Node, bool) {
	return value(p.Node)
}

// String is a @string abbreviation definition.
type String struct {
	syntax.Node
}

func CastString(n syntax.Node) (String, bool) {
	if !is(n, KindString) {
		return String{}, false
	}
	return String{n}, true
}

func (s String) Type() (syntax.Token, bool) {
	return childToken(s.Node, func(kind syntax.Kind) bool { return kind == KindStringType })
}

func (s String) Name() (syntax.Token, bool) {
	key, ok := childKey(s.Node)
	if !ok {
		return syntax.Token{}, false
	}
	return key.Word()
}

func (s String) Value() (syntax.Node, bool) {
	return value(s.Node)
}

type Entry struct {
	syntax.Node
}

func CastEntry(n syntax.Node) (Entry, bool) {
	if !is(n, KindEntry) {
		return Entry{}, false
	}
	return Entry{n}, true
}

func (e Entry) Type() (syntax.Token, bool) {
	return childToken(e.Node, func(kind syntax.Kind) bool { return kind == KindEntryType })
}

// Key returns the citation key of the entry.
func (e Entry) Key() (syntax.Token, bool) {
	key, ok := childKey(e.Node)
	if !ok {
		return syntax.Token{}, false
	}
	return key.Word()
}

func (e Entry) Fields() []Field {
	var fields []Field
	for _, child := range e.Children() {
		if child.Kind() == KindField {
			fields = append(fields, Field{child})
		}
	}
	return fields
}

type Field struct {
	syntax.Node
}

func CastField(n syntax.Node) (Field, bool) {
	if !is(n, KindField) {
		return Field{}, false
	}
	return Field{n}, true
}

func (f Field) Name() (syntax.Token, bool) {
	key, ok := childKey(f.Node)
	if !ok {
		return syntax.Token{}, false
	}
	return key.Word()
}

func (f Field) Value() (syntax.Node, bool) {
	return value(f.Node)
}

// Word is a bare literal such as a number or a @string reference.
type Word struct {
	syntax.Node
}

func CastWord(n syntax.Node) (Word, bool) {
	if !is(n, KindLiteral) {
		return Word{}, false
	}
	return Word{n}, true
}

type Command struct {
	syntax.Node
}

func CastCommand(n syntax.Node) (Command, bool) {
	if !is(n, KindCommand) {
		return Command{}, false
	}
	return Command{n}, true
}

// Concat is a value joined with #.
type Concat struct {
	syntax.Node
}

func CastConcat(n syntax.Node) (Concat, bool) {
	if !is(n, KindConcat) {
		return Concat{}, false
	}
	return Concat{n}, true
}

// Parts returns the operands of the concatenation, flattened.
func (c Concat) Parts() []syntax.Node {
	var parts []syntax.Node
	for _, child := range c.Children() {
		if nested, ok := CastConcat(child); ok {
			parts = append(parts, nested.Parts()...)
		} else {
			parts = append(parts, child)
		}
	}
	return parts
}

type BraceGroup struct {
	syntax.Node
}

func CastBraceGroup(n syntax.Node) (BraceGroup, bool) {
	if !is(n, KindBraceGroup) {
		return BraceGroup{}, false
	}
	return BraceGroup{n}, true
}

type QuoteGroup struct {
	syntax.Node
}

func CastQuoteGroup(n syntax.Node) (QuoteGroup, bool) {
	if !is(n, KindQuoteGroup) {
		return QuoteGroup{}, false
	}
	return QuoteGroup{n}, true
}
