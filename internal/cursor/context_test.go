package cursor_test

import (
	"testing"

	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/feature/featuretest"
	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/latex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, name, text string, line, character uint32) *cursor.Context {
	t.Helper()
	req := featuretest.New().
		File(name, text).
		Main(name).
		Position(line, character).
		Request()
	ctx, ok := cursor.NewContext(req)
	require.True(t, ok)
	return ctx
}

func TestCursorPrefersCommandOnTheLeft(t *testing.T) {
	ctx := newContext(t, "main.tex", "\\foo\\bar", 0, 4)
	tok, ok := ctx.AsLatex()
	require.True(t, ok)
	assert.Equal(t, "\\foo", tok.Text())

	_, ok = ctx.AsBibtex()
	assert.False(t, ok)
}

func TestCursorPrefersWordOnTheRight(t *testing.T) {
	ctx := newContext(t, "main.tex", "\\mathbb{foo}", 0, 8)
	tok, ok := ctx.AsLatex()
	require.True(t, ok)
	assert.Equal(t, "foo", tok.Text())
}

func TestCursorEmptyDocument(t *testing.T) {
	ctx := newContext(t, "main.tex", "", 0, 0)
	_, ok := ctx.Cursor()
	assert.False(t, ok)
	_, ok = ctx.AsLatex()
	assert.False(t, ok)
	_, ok = ctx.CommandRange()
	assert.False(t, ok)
}

func TestCursorOutOfRange(t *testing.T) {
	req := featuretest.New().File("main.tex", "foo").Main("main.tex").Position(3, 0).Request()
	_, ok := cursor.NewContext(req)
	assert.False(t, ok)
}

func TestCursorBibtex(t *testing.T) {
	ctx := newContext(t, "main.bib", "@article{foo,}", 0, 3)
	tok, ok := ctx.AsBibtex()
	require.True(t, ok)
	assert.Equal(t, "@article", tok.Text())
	_, ok = ctx.AsLatex()
	assert.False(t, ok)
}

func TestCommandRange(t *testing.T) {
	ctx := newContext(t, "main.tex", "\\baz\\include{bar.tex}", 0, 2)
	rng, ok := ctx.CommandRange()
	require.True(t, ok)
	assert.Equal(t, syntax.NewRange(1, 4), rng)

	ctx = newContext(t, "main.tex", "\\baz\\include{bar.tex}", 0, 4)
	rng, ok = ctx.CommandRange()
	require.True(t, ok)
	assert.Equal(t, syntax.NewRange(1, 4), rng)

	ctx = newContext(t, "main.tex", "foo \\baz", 0, 4)
	_, ok = ctx.CommandRange()
	assert.False(t, ok)
}

func TestFindCurlyGroupWord(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		character uint32
		ok        bool
		key       string
		rng       syntax.TextRange
	}{
		{"word", "\\acrshort{foo}", 12, true, "foo", syntax.NewRange(10, 13)},
		{"word start", "\\acrshort{foo}", 10, true, "foo", syntax.NewRange(10, 13)},
		{"empty", "\\acrshort{}", 10, true, "", syntax.EmptyRange(10)},
		{"after group", "\\acrshort{}", 11, false, "", syntax.TextRange{}},
		{"unclosed", "\\acrshort{f", 11, true, "f", syntax.NewRange(10, 11)},
		{"unclosed empty", "\\color{", 7, true, "", syntax.EmptyRange(7)},
		{"on command", "\\acrshort{foo}", 5, false, "", syntax.TextRange{}},
		{"generic group", "\\foo{bar}", 6, false, "", syntax.TextRange{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(t, "main.tex", tt.text, 0, tt.character)
			key, rng, group, ok := ctx.FindCurlyGroupWord()
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.rng, rng)
			assert.Equal(t, latex.KindCurlyGroupWord, group.Kind())
		})
	}
}

func TestFindCurlyGroupWordList(t *testing.T) {
	ctx := newContext(t, "main.tex", "\\usepackage{amsmath, }", 0, 20)
	key, rng, _, ok := ctx.FindCurlyGroupWordList()
	require.True(t, ok)
	assert.Equal(t, "", key)
	assert.Equal(t, syntax.EmptyRange(20), rng)

	ctx = newContext(t, "main.tex", "\\usepackage{amsmath, }", 0, 14)
	key, rng, _, ok = ctx.FindCurlyGroupWordList()
	require.True(t, ok)
	assert.Equal(t, "amsmath", key)
	assert.Equal(t, syntax.NewRange(12, 19), rng)
}

func TestIsInsideLatexCurly(t *testing.T) {
	ctx := newContext(t, "main.tex", "\\foo{bar}", 0, 9)
	commands := ctx.Document.Data.Root().Children()
	require.NotEmpty(t, commands)
	command, ok := latex.CastGenericCommand(commands[0])
	require.True(t, ok)
	group := command.CurlyGroups()[0]
	assert.False(t, ctx.IsInsideLatexCurly(group))

	ctx = newContext(t, "main.tex", "\\foo{bar}", 0, 8)
	assert.True(t, ctx.IsInsideLatexCurly(group))
}
