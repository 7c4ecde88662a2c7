package workspace

import (
	"net/url"
	"path"
	"path/filepath"

	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/latex"
)

// Link is one path of an include command together with the URIs it may
// refer to.
type Link struct {
	Kind    latex.IncludeKind
	Path    string
	Range   syntax.TextRange
	Targets []string
}

func extractLinks(uri string, root syntax.Node) []Link {
	var links []Link
	for _, n := range root.Descendants() {
		include, ok := latex.CastInclude(n)
		if !ok {
			continue
		}
		for _, key := range include.Paths() {
			p := key.String()
			links = append(links, Link{
				Kind:    include.IncludeKind(),
				Path:    p,
				Range:   key.Range(),
				Targets: ResolveLink(uri, p, include.IncludeKind()),
			})
		}
	}
	return links
}

// ResolveLink returns the candidate URIs of an included path relative to
// the including document. Paths without an extension also try the default
// extension of the include kind.
func ResolveLink(base, target string, kind latex.IncludeKind) []string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil
	}

	candidates := []string{target}
	if path.Ext(target) == "" {
		ext := ".tex"
		if kind != latex.IncludeLatex {
			ext = ".bib"
		}
		candidates = append(candidates, target+ext)
	}

	var targets []string
	for _, candidate := range candidates {
		ref := &url.URL{Path: filepath.ToSlash(candidate)}
		targets = append(targets, baseURL.ResolveReference(ref).String())
	}
	return targets
}
