package completion_test

import (
	"testing"

	"github.com/efoerster/texlab/internal/completion"
	"github.com/efoerster/texlab/internal/feature/featuretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acronymDefinition = "\\newacronym[longplural={Frames per Second}]{fpsLabel}{FPS}{Frame per Second}\n"

func acronymRequest(text string, character uint32) *featuretest.Builder {
	return featuretest.New().
		File("main.tex", acronymDefinition+text).
		Main("main.tex").
		Position(1, character)
}

func TestAcronyms(t *testing.T) {
	t.Run("word", func(t *testing.T) {
		items := run(t, completion.CompleteAcronyms, acronymRequest(`\acrshort{f}`, 11))
		assertRange(t, items, 87, 88)
		assert.Equal(t, []string{"fpsLabel"}, labels(items))
	})
	t.Run("empty group", func(t *testing.T) {
		items := run(t, completion.CompleteAcronyms, acronymRequest(`\acrshort{}`, 10))
		assertRange(t, items, 87, 87)
	})
	t.Run("after group", func(t *testing.T) {
		items := run(t, completion.CompleteAcronyms, acronymRequest(`\acrshort{}`, 11))
		assert.Empty(t, items)
	})
	t.Run("open brace", func(t *testing.T) {
		items := run(t, completion.CompleteAcronyms, acronymRequest(`\acrshort{f`, 11))
		assertRange(t, items, 87, 88)
	})
}

func TestAcronymsAcrossDocuments(t *testing.T) {
	b := featuretest.New().
		File("main.tex", `\include{defs}\acrshort{}`).
		File("defs.tex", acronymDefinition).
		Main("main.tex").
		Position(0, 24)
	items := run(t, completion.CompleteAcronyms, b)
	assert.Equal(t, []string{"fpsLabel"}, labels(items))
}

func argumentRequest(text string, character uint32) *featuretest.Builder {
	return featuretest.New().File("main.tex", text).Main("main.tex").Position(0, character)
}

func TestArguments(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		items := run(t, completion.CompleteArguments, argumentRequest(`\mathbb{}\usepackage{amsfonts}`, 8))
		assertRange(t, items, 8, 8)
		assert.Contains(t, labels(items), "R")
	})
	t.Run("word", func(t *testing.T) {
		items := run(t, completion.CompleteArguments, argumentRequest(`\mathbb{foo}\usepackage{amsfonts}`, 8))
		assertRange(t, items, 8, 11)
	})
	t.Run("open brace", func(t *testing.T) {
		items := run(t, completion.CompleteArguments, argumentRequest(`\mathbb{ \usepackage{amsfonts}`, 8))
		assertRange(t, items, 8, 8)
	})
	t.Run("open brace second", func(t *testing.T) {
		items := run(t, completion.CompleteArguments, argumentRequest(`\mathbb{}{\usepackage{amsfonts}`, 10))
		assert.Empty(t, items)
	})
	t.Run("without package", func(t *testing.T) {
		items := run(t, completion.CompleteArguments, argumentRequest(`\mathbb{}`, 8))
		assert.Empty(t, items)
	})
}

func TestColors(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		items := run(t, completion.CompleteColors, argumentRequest(`\color{}`, 7))
		assertRange(t, items, 7, 7)
		assert.Contains(t, labels(items), "red")
	})
	t.Run("word", func(t *testing.T) {
		items := run(t, completion.CompleteColors, argumentRequest(`\color{re}`, 9))
		assertRange(t, items, 7, 9)
	})
	t.Run("open brace", func(t *testing.T) {
		items := run(t, completion.CompleteColors, argumentRequest(`\color{re`, 9))
		assertRange(t, items, 7, 9)
	})
	t.Run("other command", func(t *testing.T) {
		items := run(t, completion.CompleteColors, argumentRequest(`\foo{re}`, 7))
		assert.Empty(t, items)
	})
}

func TestCitations(t *testing.T) {
	b := featuretest.New().
		File("main.tex", `\addbibresource{main.bib}\cite{}`).
		File("main.bib", `@Article{foo, title = {Bar}} @book{baz,}`).
		Main("main.tex").
		Position(0, 31)
	items := run(t, completion.CompleteCitations, b)
	assertRange(t, items, 31, 31)
	require.Len(t, items, 2)
	assert.Equal(t, completion.Citation{Key: "foo", EntryType: "article"}, items[0].Data)
	assert.Equal(t, completion.Citation{Key: "baz", EntryType: "book"}, items[1].Data)
}

func TestCitationsIgnoreUnrelatedBibliographies(t *testing.T) {
	b := featuretest.New().
		File("main.tex", `\cite{}`).
		File("other.bib", `@article{foo,}`).
		Main("main.tex").
		Position(0, 6)
	assert.Empty(t, run(t, completion.CompleteCitations, b))
}

func TestImports(t *testing.T) {
	t.Run("packages", func(t *testing.T) {
		items := run(t, completion.CompleteImports, argumentRequest(`\usepackage{am}`, 14))
		assertRange(t, items, 12, 14)
		assert.Contains(t, labels(items), "amsmath")
		assert.NotContains(t, labels(items), "article")
	})
	t.Run("classes", func(t *testing.T) {
		items := run(t, completion.CompleteImports, argumentRequest(`\documentclass{}`, 15))
		assertRange(t, items, 15, 15)
		assert.Contains(t, labels(items), "article")
		assert.NotContains(t, labels(items), "amsmath")
	})
}

func TestTikzLibraries(t *testing.T) {
	t.Run("tikz", func(t *testing.T) {
		items := run(t, completion.CompleteTikzLibraries, argumentRequest(`\usetikzlibrary{}`, 16))
		assertRange(t, items, 16, 16)
		assert.Contains(t, labels(items), "3d")
	})
	t.Run("pgf", func(t *testing.T) {
		items := run(t, completion.CompleteTikzLibraries, argumentRequest(`\usepgflibrary{}`, 15))
		assert.Contains(t, labels(items), "arrows.meta")
		assert.NotContains(t, labels(items), "3d")
	})
}

func TestCommandSymbols(t *testing.T) {
	t.Run("kernel", func(t *testing.T) {
		items := run(t, completion.CompleteCommandSymbols, argumentRequest(`\al`, 3))
		assertRange(t, items, 1, 3)
		assert.Contains(t, labels(items), "alpha")
		assert.NotContains(t, labels(items), "mathbb")
	})
	t.Run("linked component", func(t *testing.T) {
		items := run(t, completion.CompleteCommandSymbols, argumentRequest(`\usepackage{amssymb}\ma`, 23))
		assert.Contains(t, labels(items), "mathbb")
	})
	t.Run("before backslash", func(t *testing.T) {
		items := run(t, completion.CompleteCommandSymbols, argumentRequest(`\al`, 0))
		assert.Empty(t, items)
	})
}
