package latex_test

import (
	"strings"
	"testing"

	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/latex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findKind(root syntax.Node, kind syntax.Kind) []syntax.Node {
	var result []syntax.Node
	for _, n := range root.Descendants() {
		if n.Kind() == kind {
			result = append(result, n)
		}
	}
	return result
}

func dump(t *testing.T, tree *syntax.Tree) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, syntax.Dump(&sb, tree.Root(), latex.KindName))
	return sb.String()
}

func TestParseCoversWholeText(t *testing.T) {
	inputs := []string{
		"",
		"\\documentclass{article}\n\\begin{document}\nfoo % bar\n\\end{document}",
		"}}]]{{[[",
		"\\newacronym[longplural={Frames per Second}]{fpsLabel}{FPS}{Frame per Second}",
		"$x = \\frac{1}{2}$ \\\\ \\cite[p.~3][]{a, b}",
		"äöü 😀 \\mathbb{R}",
	}
	for _, input := range inputs {
		tree := latex.Parse(input)
		assert.Equal(t, syntax.NewRange(0, len(input)), tree.Root().Range(), input)

		var sb strings.Builder
		for _, tok := range tree.Root().Tokens() {
			sb.WriteString(tok.Text())
		}
		assert.Equal(t, input, sb.String())
	}
}

func TestParseGenericCommandArguments(t *testing.T) {
	tree := latex.Parse("\\mathbb{}{\\usepackage{amsfonts}")
	commands := findKind(tree.Root(), latex.KindGenericCommand)
	require.Len(t, commands, 1)

	command, ok := latex.CastGenericCommand(commands[0])
	require.True(t, ok)
	name, ok := command.Name()
	require.True(t, ok)
	assert.Equal(t, "\\mathbb", name.Text())

	groups := command.CurlyGroups()
	require.Len(t, groups, 2)
	_, ok = groups[1].RightCurly()
	assert.False(t, ok)
	assert.Len(t, findKind(groups[1].Node, latex.KindPackageInclude), 1)
}

func TestParseAcronymDefinition(t *testing.T) {
	tree := latex.Parse("\\newacronym[longplural={Frames per Second}]{fpsLabel}{FPS}{Frame per Second}")
	nodes := findKind(tree.Root(), latex.KindAcronymDefinition)
	require.Len(t, nodes, 1)

	def, ok := latex.CastAcronymDefinition(nodes[0])
	require.True(t, ok)
	group, ok := def.Name()
	require.True(t, ok)
	key, ok := group.Key()
	require.True(t, ok)
	assert.Equal(t, "fpsLabel", key.String())
	assert.Equal(t, syntax.NewRange(44, 52), key.Range())
	assert.Len(t, findKind(nodes[0], latex.KindCurlyGroup), 3)
}

func TestParseUnclosedWordGroup(t *testing.T) {
	tree := latex.Parse("\\acrshort{f")
	nodes := findKind(tree.Root(), latex.KindAcronymReference)
	require.Len(t, nodes, 1)

	ref, ok := latex.CastAcronymReference(nodes[0])
	require.True(t, ok)
	group, ok := ref.Name()
	require.True(t, ok)
	_, ok = group.RightCurly()
	assert.False(t, ok)
	assert.Equal(t, syntax.NewRange(9, 11), latex.SmallRange(group.Node))
}

func TestParseIncludes(t *testing.T) {
	tree := latex.Parse("\\include{bar.tex}\\addbibresource{refs.bib}\\bibliography{a,b}\\usepackage[utf8]{inputenc, amsmath}")

	var includes []latex.Include
	for _, n := range tree.Root().Descendants() {
		if include, ok := latex.CastInclude(n); ok {
			includes = append(includes, include)
		}
	}
	require.Len(t, includes, 3)
	assert.Equal(t, latex.IncludeLatex, includes[0].IncludeKind())
	assert.Equal(t, "bar.tex", includes[0].Paths()[0].String())
	assert.Equal(t, latex.IncludeBiblatex, includes[1].IncludeKind())
	assert.Equal(t, latex.IncludeBibtex, includes[2].IncludeKind())
	assert.Len(t, includes[2].Paths(), 2)

	packages := findKind(tree.Root(), latex.KindPackageInclude)
	require.Len(t, packages, 1)
	pkg, _ := latex.CastPackageInclude(packages[0])
	names, ok := pkg.Names()
	require.True(t, ok)
	keys := names.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, "inputenc", keys[0].String())
	assert.Equal(t, "amsmath", keys[1].String())
}

func TestParseCitationOptions(t *testing.T) {
	tree := latex.Parse("\\cite[see][p. 3]{knuth, lamport}")
	nodes := findKind(tree.Root(), latex.KindCitation)
	require.Len(t, nodes, 1)
	assert.Len(t, findKind(nodes[0], latex.KindBrackGroup), 2)

	citation, _ := latex.CastCitation(nodes[0])
	keys, ok := citation.Keys()
	require.True(t, ok)
	assert.Len(t, keys.Keys(), 2)
}

func TestCommandNameKinds(t *testing.T) {
	tree := latex.Parse("\\foo\\color\\acrshort\\cite*\\\\")
	var kinds []syntax.Kind
	for _, tok := range tree.Root().Tokens() {
		assert.True(t, latex.IsCommandName(tok.Kind()), tok.Text())
		kinds = append(kinds, tok.Kind())
	}
	assert.Equal(t, []syntax.Kind{
		latex.KindGenericCommandName,
		latex.KindColorReferenceName,
		latex.KindAcronymReferenceName,
		latex.KindCitationName,
		latex.KindGenericCommandName,
	}, kinds)
}

func TestCastMismatch(t *testing.T) {
	tree := latex.Parse("\\foo{bar}")
	root := tree.Root()

	_, ok := latex.CastCurlyGroup(root)
	assert.False(t, ok)
	_, ok = latex.CastGenericCommand(syntax.Node{})
	assert.False(t, ok)
	_, ok = latex.CastAcronymReference(root.Children()[0])
	assert.False(t, ok)
}

func TestDump(t *testing.T) {
	out := dump(t, latex.Parse("\\foo{bar}"))
	assert.Contains(t, out, "GENERIC_COMMAND@0..9")
	assert.Contains(t, out, "WORD@5..8 \"bar\"")
}
