package bibtex

import "github.com/efoerster/texlab/internal/syntax"

type parser struct {
	tokens  []token
	pos     int
	builder *syntax.Builder
}

// Parse builds the concrete syntax tree of a BibTeX document.
func Parse(source string) *syntax.Tree {
	p := &parser{tokens: lex(source), builder: syntax.NewBuilder(source)}
	p.root()
	return p.builder.Finish()
}

func (p *parser) peek() (syntax.Kind, bool) {
	if p.pos >= len(p.tokens) {
		return 0, false
	}
	return p.tokens[p.pos].kind, true
}

func (p *parser) at(kind syntax.Kind) bool {
	k, ok := p.peek()
	return ok && k == kind
}

func (p *parser) eat() {
	tok := p.tokens[p.pos]
	p.builder.Token(tok.kind, tok.length)
	p.pos++
}

func (p *parser) trivia() {
	for {
		kind, ok := p.peek()
		if !ok || !IsTrivia(kind) {
			return
		}
		p.eat()
	}
}

// expect consumes leading trivia only when the next real token is one of kinds.
func (p *parser) expect(kinds ...syntax.Kind) bool {
	for i := p.pos; i < len(p.tokens); i++ {
		if IsTrivia(p.tokens[i].kind) {
			continue
		}
		for _, kind := range kinds {
			if p.tokens[i].kind == kind {
				p.trivia()
				return true
			}
		}
		return false
	}
	return false
}

func (p *parser) root() {
	p.builder.StartNode(KindRoot)
	for {
		kind, ok := p.peek()
		if !ok {
			break
		}
		switch kind {
		case KindPreambleType:
			p.preamble()
		case KindStringType:
			p.stringDefinition()
		case KindEntryType:
			p.entry()
		default:
			p.junk()
		}
	}
	p.builder.FinishNode()
}

func (p *parser) junk() {
	p.builder.StartNode(KindJunk)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || kind == KindPreambleType || kind == KindStringType || kind == KindEntryType {
			break
		}
		p.eat()
	}
	p.builder.FinishNode()
}

// openDelimiter consumes { or ( and returns the matching closer.
func (p *parser) openDelimiter() (syntax.Kind, bool) {
	if !p.expect(KindLCurly, KindLParen) {
		return 0, false
	}
	kind, _ := p.peek()
	p.eat()
	if kind == KindLParen {
		return KindRParen, true
	}
	return KindRCurly, true
}

func (p *parser) preamble() {
	p.builder.StartNode(KindPreamble)
	p.eat()
	if closer, ok := p.openDelimiter(); ok {
		if p.expect(KindWord, KindCommandName, KindLCurly, KindQuote) {
			p.value()
		}
		if p.expect(closer) {
			p.eat()
		}
	}
	p.builder.FinishNode()
}

func (p *parser) stringDefinition() {
	p.builder.StartNode(KindString)
	p.eat()
	if closer, ok := p.openDelimiter(); ok {
		if p.expect(KindWord) {
			p.key()
		}
		if p.expect(KindEqualitySign) {
			p.eat()
			if p.expect(KindWord, KindCommandName, KindLCurly, KindQuote) {
				p.value()
			}
		}
		if p.expect(closer) {
			p.eat()
		}
	}
	p.builder.FinishNode()
}

func (p *parser) entry() {
	p.builder.StartNode(KindEntry)
	p.eat()
	closer, ok := p.openDelimiter()
	if !ok {
		p.builder.FinishNode()
		return
	}
	if p.expect(KindWord) {
		p.key()
	}
	for {
		p.trivia()
		kind, ok := p.peek()
		if !ok || IsType(kind) {
			break
		}
		if kind == closer {
			p.eat()
			break
		}
		if kind == KindWord {
			p.field()
		} else {
			p.eat()
		}
	}
	p.builder.FinishNode()
}

func (p *parser) key() {
	p.builder.StartNode(KindKey)
	p.eat()
	p.builder.FinishNode()
}

func (p *parser) field() {
	p.builder.StartNode(KindField)
	p.key()
	if p.expect(KindEqualitySign) {
		p.eat()
		if p.expect(KindWord, KindCommandName, KindLCurly, KindQuote) {
			p.value()
		}
	}
	p.builder.FinishNode()
}

// value parses a term optionally followed by # concatenations.
func (p *parser) value() {
	cp := p.builder.Checkpoint()
	p.term()
	if p.expect(KindHash) {
		p.builder.StartNodeAt(cp, KindConcat)
		p.eat()
		if p.expect(KindWord, KindCommandName, KindLCurly, KindQuote) {
			p.value()
		}
		p.builder.FinishNode()
	}
}

func (p *parser) term() {
	kind, _ := p.peek()
	switch kind {
	case KindWord:
		p.leaf(KindLiteral)
	case KindCommandName:
		p.leaf(KindCommand)
	case KindLCurly:
		p.braceGroup()
	case KindQuote:
		p.quoteGroup()
	}
}

func (p *parser) leaf(kind syntax.Kind) {
	p.builder.StartNode(kind)
	p.eat()
	p.builder.FinishNode()
}

func (p *parser) braceGroup() {
	p.builder.StartNode(KindBraceGroup)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || kind == KindRCurly {
			break
		}
		p.groupContent(kind)
	}
	if p.at(KindRCurly) {
		p.eat()
	}
	p.builder.FinishNode()
}

func (p *parser) quoteGroup() {
	p.builder.StartNode(KindQuoteGroup)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || kind == KindQuote || kind == KindRCurly || IsType(kind) {
			break
		}
		p.groupContent(kind)
	}
	if p.at(KindQuote) {
		p.eat()
	}
	p.builder.FinishNode()
}

func (p *parser) groupContent(kind syntax.Kind) {
	switch kind {
	case KindLCurly:
		p.braceGroup()
	case KindWord:
		p.leaf(KindLiteral)
	case KindCommandName:
		p.leaf(KindCommand)
	default:
		p.eat()
	}
}
