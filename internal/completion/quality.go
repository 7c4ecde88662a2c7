package completion

import (
	"sort"
	"strings"

	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/bibtex"
	"github.com/efoerster/texlab/internal/syntax/latex"
	"github.com/efoerster/texlab/internal/workspace"
)

// Quality scores label against query. Higher is better; 0 means there is
// no query.
func Quality(query string, hasQuery bool, label string) int {
	if !hasQuery {
		return 0
	}
	lowerLabel, lowerQuery := strings.ToLower(label), strings.ToLower(query)
	switch {
	case label == query:
		return 7
	case lowerLabel == lowerQuery:
		return 6
	case strings.HasPrefix(label, query):
		return 5
	case strings.HasPrefix(lowerLabel, lowerQuery):
		return 4
	case strings.Contains(label, query):
		return 3
	case strings.Contains(lowerLabel, lowerQuery):
		return 2
	default:
		return 1
	}
}

// OrderByQuality sorts items by descending quality, keeping the merge
// order among equals.
func OrderByQuality(items []Item, query string, hasQuery bool) {
	scores := make([]int, len(items))
	for i, item := range items {
		scores[i] = Quality(query, hasQuery, item.Data.Label())
	}
	sort.Stable(byScore{items, scores})
}

type byScore struct {
	items  []Item
	scores []int
}

func (s byScore) Len() int           { return len(s.items) }
func (s byScore) Less(i, j int) bool { return s.scores[i] > s.scores[j] }
func (s byScore) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}

// Query derives the text the user is typing at offset. It is false when
// nothing at the offset can serve as a query.
func Query(doc *workspace.Document, offset int) (string, bool) {
	if doc == nil || doc.Data == nil {
		return "", false
	}
	switch doc.Language {
	case workspace.LanguageBibtex:
		return bibtexQuery(doc.Data.Root(), offset)
	default:
		return latexQuery(doc.Data.Root(), offset)
	}
}

func latexQuery(root syntax.Node, offset int) (string, bool) {
	left, right, ok := root.Tree().TokenAtOffset(offset)
	if ok {
		for _, tok := range []syntax.Token{left, right} {
			if latex.IsCommandName(tok.Kind()) && tok.Range().ContainsInclusive(offset) {
				return tok.Text()[1:], true
			}
		}
	}

	node, ok := syntax.FindNode(root, offset)
	if !ok {
		return "", false
	}
	switch node.Kind() {
	case latex.KindText, latex.KindKey:
		var last syntax.Token
		found := false
		for _, word := range node.ChildTokens() {
			if word.Kind() == latex.KindWord && word.Range().Start < offset {
				last, found = word, true
			}
		}
		if !found {
			return "", false
		}
		return last.Text(), true
	default:
		return "", true
	}
}

func bibtexQuery(root syntax.Node, offset int) (string, bool) {
	node, ok := syntax.FindNode(root, offset)
	if !ok {
		return "", false
	}

	typeQuery := func(tok syntax.Token, ok bool) (string, bool) {
		if ok && tok.Range().ContainsInclusive(offset) {
			return tok.Text()[1:], true
		}
		return "", true
	}

	if preamble, ok := bibtex.CastPreamble(node); ok {
		return typeQuery(preamble.Type())
	}
	if str, ok := bibtex.CastString(node); ok {
		return typeQuery(str.Type())
	}
	if entry, ok := bibtex.CastEntry(node); ok {
		return typeQuery(entry.Type())
	}

	switch node.Kind() {
	case bibtex.KindJunk, bibtex.KindLiteral:
		return strings.TrimSpace(node.Text()), true
	case bibtex.KindKey:
		parent, ok := node.Parent()
		if ok && parent.Kind() == bibtex.KindField {
			return strings.TrimSpace(node.Text()), true
		}
		return "", true
	case bibtex.KindCommand:
		return strings.TrimSpace(node.Text())[1:], true
	default:
		return "", true
	}
}
