package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented outline of the tree below n. name maps kinds to
// their grammar specific names.
func Dump(w io.Writer, n Node, name func(Kind) string) error {
	return dump(w, n, name, 0)
}

func dump(w io.Writer, n Node, name func(Kind) string, depth int) error {
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%s%s@%s\n", indent, name(n.Kind()), n.Range()); err != nil {
		return err
	}
	for _, child := range n.ChildrenWithTokens() {
		if node, ok := child.AsNode(); ok {
			if err := dump(w, node, name, depth+1); err != nil {
				return err
			}
			continue
		}
		tok, _ := child.AsToken()
		if _, err := fmt.Fprintf(w, "%s  %s@%s %q\n", indent, name(tok.Kind()), tok.Range(), tok.Text()); err != nil {
			return err
		}
	}
	return nil
}
