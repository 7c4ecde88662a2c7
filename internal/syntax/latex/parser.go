package latex

import "github.com/efoerster/texlab/internal/syntax"

type parser struct {
	tokens     []token
	pos        int
	builder    *syntax.Builder
	brackDepth int
}

// Parse builds the concrete syntax tree of a LaTeX document. Parsing never
// fails: unbalanced groups are left open and stray closers become plain
// tokens of the enclosing node.
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

// peekNonTrivia returns the kind of the first non-trivia token ahead.
func (p *parser) peekNonTrivia() (syntax.Kind, bool) {
	for i := p.pos; i < len(p.tokens); i++ {
		if !IsTrivia(p.tokens[i].kind) {
			return p.tokens[i].kind, true
		}
	}
	return 0, false
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

// expect consumes leading trivia only when the next real token is kind.
func (p *parser) expect(kind syntax.Kind) bool {
	if next, ok := p.peekNonTrivia(); ok && next == kind {
		p.trivia()
		return true
	}
	return false
}

func (p *parser) root() {
	p.builder.StartNode(KindRoot)
	for {
		if _, ok := p.peek(); !ok {
			break
		}
		p.content()
	}
	p.builder.FinishNode()
}

func (p *parser) content() {
	kind, _ := p.peek()
	switch kind {
	case KindLCurly:
		p.curlyGroup()
	case KindWhitespace, KindLineBreak, KindComment, KindRCurly:
		p.eat()
	case KindRBrack:
		if p.brackDepth > 0 {
			p.eat()
		} else {
			p.text()
		}
	case KindWord, KindLBrack, KindLParen, KindRParen, KindComma, KindEqualitySign, KindDollar:
		p.text()
	case KindGenericCommandName:
		p.genericCommand()
	case KindAcronymDefinitionName:
		p.acronymDefinition()
	case KindAcronymReferenceName:
		p.command(KindAcronymReference, 1, p.curlyGroupWord)
	case KindColorReferenceName:
		p.command(KindColorReference, 0, p.curlyGroupWord)
	case KindLatexIncludeName:
		p.command(KindLatexInclude, 1, p.curlyGroupWordList)
	case KindBiblatexIncludeName:
		p.command(KindBiblatexInclude, 1, p.curlyGroupWordList)
	case KindBibtexIncludeName:
		p.command(KindBibtexInclude, 1, p.curlyGroupWordList)
	case KindPackageIncludeName:
		p.command(KindPackageInclude, 1, p.curlyGroupWordList)
	case KindClassIncludeName:
		p.command(KindClassInclude, 1, p.curlyGroupWordList)
	case KindCitationName:
		p.command(KindCitation, 2, p.curlyGroupWordList)
	case KindTikzLibraryImportName:
		p.command(KindTikzLibraryImport, 0, p.curlyGroupWordList)
	default:
		p.eat()
	}
}

func (p *parser) text() {
	p.builder.StartNode(KindText)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok {
			break
		}
		switch kind {
		case KindWord, KindWhitespace, KindLineBreak, KindComment, KindLBrack, KindLParen, KindRParen, KindComma, KindEqualitySign, KindDollar:
			p.eat()
			continue
		case KindRBrack:
			if p.brackDepth == 0 {
				p.eat()
				continue
			}
		}
		break
	}
	p.builder.FinishNode()
}

func (p *parser) curlyGroup() {
	depth := p.brackDepth
	p.brackDepth = 0
	p.builder.StartNode(KindCurlyGroup)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || kind == KindRCurly {
			break
		}
		p.content()
	}
	if p.at(KindRCurly) {
		p.eat()
	}
	p.builder.FinishNode()
	p.brackDepth = depth
}

func (p *parser) brackGroup() {
	p.builder.StartNode(KindBrackGroup)
	p.eat()
	p.brackDepth++
	for {
		kind, ok := p.peek()
		if !ok || kind == KindRBrack || kind == KindRCurly {
			break
		}
		p.content()
	}
	p.brackDepth--
	if p.at(KindRBrack) {
		p.eat()
	}
	p.builder.FinishNode()
}

func (p *parser) curlyGroupWord() {
	p.builder.StartNode(KindCurlyGroupWord)
	p.eat()
	p.trivia()
	if p.at(KindWord) {
		p.key()
	}
	p.groupRest()
	p.builder.FinishNode()
}

func (p *parser) curlyGroupWordList() {
	p.builder.StartNode(KindCurlyGroupWordList)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || kind == KindRCurly {
			break
		}
		switch {
		case kind == KindWord:
			p.key()
		case kind == KindComma || IsTrivia(kind):
			p.eat()
		default:
			p.content()
		}
	}
	if p.at(KindRCurly) {
		p.eat()
	}
	p.builder.FinishNode()
}

// groupRest parses whatever follows the expected content of a group up to
// and including its closing brace.
func (p *parser) groupRest() {
	depth := p.brackDepth
	p.brackDepth = 0
	for {
		kind, ok := p.peek()
		if !ok || kind == KindRCurly {
			break
		}
		p.content()
	}
	if p.at(KindRCurly) {
		p.eat()
	}
	p.brackDepth = depth
}

// key parses a run of words separated by whitespace.
func (p *parser) key() {
	p.builder.StartNode(KindKey)
	p.eat()
	for p.pos+1 < len(p.tokens) {
		kind := p.tokens[p.pos].kind
		if (kind == KindWhitespace || kind == KindLineBreak) && p.tokens[p.pos+1].kind == KindWord {
			p.eat()
			p.eat()
			continue
		}
		break
	}
	p.builder.FinishNode()
}

func (p *parser) genericCommand() {
	p.builder.StartNode(KindGenericCommand)
	p.eat()
	for {
		switch {
		case p.expect(KindLCurly):
			p.curlyGroup()
		case p.expect(KindLBrack):
			p.brackGroup()
		default:
			p.builder.FinishNode()
			return
		}
	}
}

// command parses a command with up to options bracket groups followed by a
// single required group parsed by arg.
func (p *parser) command(kind syntax.Kind, options int, arg func()) {
	p.builder.StartNode(kind)
	p.eat()
	for i := 0; i < options && p.expect(KindLBrack); i++ {
		p.brackGroup()
	}
	if p.expect(KindLCurly) {
		arg()
	}
	p.builder.FinishNode()
}

func (p *parser) acronymDefinition() {
	p.builder.StartNode(KindAcronymDefinition)
	p.eat()
	if p.expect(KindLBrack) {
		p.brackGroup()
	}
	if p.expect(KindLCurly) {
		p.curlyGroupWord()
		for i := 0; i < 2 && p.expect(KindLCurly); i++ {
			p.curlyGroup()
		}
	}
	p.builder.FinishNode()
}
