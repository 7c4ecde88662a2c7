package latex

import (
	"strings"

	"github.com/efoerster/texlab/internal/syntax"
)

func childToken(n syntax.Node, kind syntax.Kind) (syntax.Token, bool) {
	for _, tok := range n.ChildTokens() {
		if tok.Kind() == kind {
			return tok, true
		}
	}
	return syntax.Token{}, false
}

func childNode(n syntax.Node, kind syntax.Kind) (syntax.Node, bool) {
	for _, child := range n.Children() {
		if child.Kind() == kind {
			return child, true
		}
	}
	return syntax.Node{}, false
}

func is(n syntax.Node, kinds ...syntax.Kind) bool {
	if !n.IsValid() {
		return false
	}
	for _, kind := range kinds {
		if n.Kind() == kind {
			return true
		}
	}
	return false
}

// SmallRange is the range of n without trailing trivia.
func SmallRange(n syntax.Node) syntax.TextRange {
	full := n.Range()
	tok, ok := n.LastToken()
	for ok && IsTrivia(tok.Kind()) && tok.Range().Start >= full.Start {
		tok, ok = tok.Prev()
	}
	if !ok || tok.Range().End < full.Start {
		return syntax.EmptyRange(full.Start)
	}
	return syntax.NewRange(full.Start, tok.Range().End)
}

// CommandName returns the name token of a command node.
func CommandName(n syntax.Node) (syntax.Token, bool) {
	for _, tok := range n.ChildTokens() {
		if IsCommandName(tok.Kind()) {
			return tok, true
		}
	}
	return syntax.Token{}, false
}

// HasCurly is implemented by every brace-delimited group.
type HasCurly interface {
	Syntax() syntax.Node
	LeftCurly() (syntax.Token, bool)
	RightCurly() (syntax.Token, bool)
}

type curly struct {
	syntax.Node
}

func (c curly) Syntax() syntax.Node {
	return c.Node
}

func (c curly) LeftCurly() (syntax.Token, bool) {
	return childToken(c.Node, KindLCurly)
}

func (c curly) RightCurly() (syntax.Token, bool) {
	return childToken(c.Node, KindRCurly)
}

type CurlyGroup struct{ curly }

func CastCurlyGroup(n syntax.Node) (CurlyGroup, bool) {
	if !is(n, KindCurlyGroup) {
		return CurlyGroup{}, false
	}
	return CurlyGroup{curly{n}}, true
}

// Content returns the nodes inside the braces.
func (g CurlyGroup) Content() []syntax.Node {
	return g.Children()
}

// CurlyGroupWord is a group expected to hold a single key.
type CurlyGroupWord struct{ curly }

func CastCurlyGroupWord(n syntax.Node) (CurlyGroupWord, bool) {
	if !is(n, KindCurlyGroupWord) {
		return CurlyGroupWord{}, false
	}
	return CurlyGroupWord{curly{n}}, true
}

func (g CurlyGroupWord) Key() (Key, bool) {
	n, ok := childNode(g.Node, KindKey)
	if !ok {
		return Key{}, false
	}
	return Key{n}, true
}

// CurlyGroupWordList is a group holding comma separated keys.
type CurlyGroupWordList struct{ curly }

func CastCurlyGroupWordList(n syntax.Node) (CurlyGroupWordList, bool) {
	if !is(n, KindCurlyGroupWordList) {
		return CurlyGroupWordList{}, false
	}
	return CurlyGroupWordList{curly{n}}, true
}

func (g CurlyGroupWordList) Keys() []Key {
	var keys []Key
	for _, child := range g.Children() {
		if child.Kind() == KindKey {
			keys = append(keys, Key{child})
		}
	}
	return keys
}

type BrackGroup struct {
	syntax.Node
}

func CastBrackGroup(n syntax.Node) (BrackGroup, bool) {
	if !is(n, KindBrackGroup) {
		return BrackGroup{}, false
	}
	return BrackGroup{n}, true
}

func (g BrackGroup) RightBrack() (syntax.Token, bool) {
	return childToken(g.Node, KindRBrack)
}

type Text struct {
	syntax.Node
}

func CastText(n syntax.Node) (Text, bool) {
	if !is(n, KindText) {
		return Text{}, false
	}
	return Text{n}, true
}

func (t Text) Words() []syntax.Token {
	var words []syntax.Token
	for _, tok := range t.ChildTokens() {
		if tok.Kind() == KindWord {
			words = append(words, tok)
		}
	}
	return words
}

// Key is a run of words, for example a label or a file name.
type Key struct {
	syntax.Node
}

func CastKey(n syntax.Node) (Key, bool) {
	if !is(n, KindKey) {
		return Key{}, false
	}
	return Key{n}, true
}

func (k Key) Words() []syntax.Token {
	return Text{k.Node}.Words()
}

// String joins the words of the key with single spaces.
func (k Key) String() string {
	words := k.Words()
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text()
	}
	return strings.Join(parts, " ")
}

type GenericCommand struct {
	syntax.Node
}

func CastGenericCommand(n syntax.Node) (GenericCommand, bool) {
	if !is(n, KindGenericCommand) {
		return GenericCommand{}, false
	}
	return GenericCommand{n}, true
}

func (c GenericCommand) Name() (syntax.Token, bool) {
	return childToken(c.Node, KindGenericCommandName)
}

// CurlyGroups returns the brace-delimited arguments in order.
func (c GenericCommand) CurlyGroups() []CurlyGroup {
	var groups []CurlyGroup
	for _, child := range c.Children() {
		if group, ok := CastCurlyGroup(child); ok {
			groups = append(groups, group)
		}
	}
	return groups
}

// AcronymDefinition is \newacronym[options]{name}{short}{long}.
type AcronymDefinition struct {
	syntax.Node
}

func CastAcronymDefinition(n syntax.Node) (AcronymDefinition, bool) {
	if !is(n, KindAcronymDefinition) {
		return AcronymDefinition{}, false
	}
	return AcronymDefinition{n}, true
}

func (d AcronymDefinition) Name() (CurlyGroupWord, bool) {
	n, ok := childNode(d.Node, KindCurlyGroupWord)
	if !ok {
		return CurlyGroupWord{}, false
	}
	return CurlyGroupWord{curly{n}}, true
}

type AcronymReference struct {
	syntax.Node
}

func CastAcronymReference(n syntax.Node) (AcronymReference, bool) {
	if !is(n, KindAcronymReference) {
		return AcronymReference{}, false
	}
	return AcronymReference{n}, true
}

func (r AcronymReference) Name() (CurlyGroupWord, bool) {
	return CastCurlyGroupWord(firstChild(r.Node, KindCurlyGroupWord))
}

type ColorReference struct {
	syntax.Node
}

func CastColorReference(n syntax.Node) (ColorReference, bool) {
	if !is(n, KindColorReference) {
		return ColorReference{}, false
	}
	return ColorReference{n}, true
}

func (r ColorReference) Name() (CurlyGroupWord, bool) {
	return CastCurlyGroupWord(firstChild(r.Node, KindCurlyGroupWord))
}

// IncludeKind distinguishes what an Include pulls in.
type IncludeKind int

const (
	IncludeLatex IncludeKind = iota
	IncludeBiblatex
	IncludeBibtex
)

// Include is \include, \input, \addbibresource or \bibliography.
type Include struct {
	syntax.Node
}

func CastInclude(n syntax.Node) (Include, bool) {
	if !is(n, KindLatexInclude, KindBiblatexInclude, KindBibtexInclude) {
		return Include{}, false
	}
	return Include{n}, true
}

func (i Include) IncludeKind() IncludeKind {
	switch i.Kind() {
	case KindBiblatexInclude:
		return IncludeBiblatex
	case KindBibtexInclude:
		return IncludeBibtex
	default:
		return IncludeLatex
	}
}

func (i Include) Path() (CurlyGroupWordList, bool) {
	return CastCurlyGroupWordList(firstChild(i.Node, KindCurlyGroupWordList))
}

// Paths returns the included paths as written.
func (i Include) Paths() []Key {
	list, ok := i.Path()
	if !ok {
		return nil
	}
	return list.Keys()
}

// PackageInclude is \usepackage or \RequirePackage.
type PackageInclude struct {
	syntax.Node
}

func CastPackageInclude(n syntax.Node) (PackageInclude, bool) {
	if !is(n, KindPackageInclude) {
		return PackageInclude{}, false
	}
	return PackageInclude{n}, true
}

func (i PackageInclude) Names() (CurlyGroupWordList, bool) {
	return CastCurlyGroupWordList(firstChild(i.Node, KindCurlyGroupWordList))
}

type ClassInclude struct {
	syntax.Node
}

func CastClassInclude(n syntax.Node) (ClassInclude, bool) {
	if !is(n, KindClassInclude) {
		return ClassInclude{}, false
	}
	return ClassInclude{n}, true
}

func (i ClassInclude) Names() (CurlyGroupWordList, bool) {
	return CastCurlyGroupWordList(firstChild(i.Node, KindCurlyGroupWordList))
}

type Citation struct {
	syntax.Node
}

func CastCitation(n syntax.Node) (Citation, bool) {
	if !is(n, KindCitation) {
		return Citation{}, false
	}
	return Citation{n}, true
}

func (c Citation) Keys() (CurlyGroupWordList, bool) {
	return CastCurlyGroupWordList(firstChild(c.Node, KindCurlyGroupWordList))
}

type TikzLibraryImport struct {
	syntax.Node
}

func CastTikzLibraryImport(n syntax.Node) (TikzLibraryImport, bool) {
	if !is(n, KindTikzLibraryImport) {
		return TikzLibraryImport{}, false
	}
	return TikzLibraryImport{n}, true
}

func (i TikzLibraryImport) Names() (CurlyGroupWordList, bool) {
	return CastCurlyGroupWordList(firstChild(i.Node, KindCurlyGroupWordList))
}

// firstChild returns the first child of kind or the zero node.
func firstChild(n syntax.Node, kind syntax.Kind) syntax.Node {
	child, _ := childNode(n, kind)
	return child
}
