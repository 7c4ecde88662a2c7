package metadata

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markdown converts an HTML fragment to markdown. Unknown elements keep
// their text only.
func Markdown(fragment string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return "", err
	}

	var w writer
	for _, n := range nodes {
		w.node(n)
	}
	return strings.TrimSpace(tidy(w.String())), nil
}

type writer struct {
	strings.Builder
	listDepth int
}

func (w *writer) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c)
	}
}

func (w *writer) node(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.WriteString(collapseSpace(n.Data))
		return
	case html.ElementNode:
	default:
		w.children(n)
		return
	}

	switch n.DataAtom {
	case atom.P, atom.Div:
		w.WriteString("\n\n")
		w.children(n)
		w.WriteString("\n\n")
	case atom.Br:
		w.WriteString("\n")
	case atom.Em, atom.I:
		w.wrap(n, "*")
	case atom.Strong, atom.B:
		w.wrap(n, "**")
	case atom.Code, atom.Tt, atom.Kbd:
		w.wrap(n, "`")
	case atom.A:
		href := attr(n, "href")
		if href == "" {
			w.children(n)
			return
		}
		w.WriteString("[")
		w.children(n)
		w.WriteString("](" + href + ")")
	case atom.Ul, atom.Ol:
		w.listDepth++
		w.WriteString("\n")
		w.children(n)
		w.listDepth--
		w.WriteString("\n")
	case atom.Li:
		w.WriteString("\n" + strings.Repeat("  ", w.listDepth-1) + "- ")
		w.children(n)
	default:
		w.children(n)
	}
}

func (w *writer) wrap(n *html.Node, marker string) {
	w.WriteString(marker)
	w.children(n)
	w.WriteString(marker)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			return " "
		}
		return ""
	}
	out := strings.Join(fields, " ")
	if strings.TrimLeft(s, " \t\r\n") != s {
		out = " " + out
	}
	if strings.TrimRight(s, " \t\r\n") != s {
		out += " "
	}
	return out
}

// tidy strips stray spaces around lines, keeping list indentation, and
// collapses runs of blank lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if !strings.HasPrefix(strings.TrimLeft(line, " "), "- ") {
			line = strings.TrimLeft(line, " ")
		}
		lines[i] = line
	}
	s = strings.Join(lines, "\n")
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
