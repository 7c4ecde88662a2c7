package rename_test

import (
	"context"
	"testing"

	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/feature/featuretest"
	"github.com/efoerster/texlab/internal/rename"
	"github.com/efoerster/texlab/internal/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func newContext(t *testing.T, b *featuretest.Builder) *cursor.Context {
	t.Helper()
	c, ok := cursor.NewContext(b.Request())
	require.True(t, ok)
	return c
}

func TestRenameCommand(t *testing.T) {
	c := newContext(t, featuretest.New().
		File("foo.tex", `\baz\include{bar.tex}`).
		File("bar.tex", `\baz`).
		Main("foo.tex").
		Position(0, 2))

	edit, ok := rename.RenameCommand(context.Background(), c, "qux")
	require.True(t, ok)
	assert.Equal(t, map[protocol.DocumentUri][]protocol.TextEdit{
		featuretest.URI("foo.tex"): {{Range: text.NewRange(0, 1, 0, 4), NewText: "qux"}},
		featuretest.URI("bar.tex"): {{Range: text.NewRange(0, 1, 0, 4), NewText: "qux"}},
	}, edit.Changes)
}

func TestRenameCommandOmitsDocumentsWithoutMatches(t *testing.T) {
	c := newContext(t, featuretest.New().
		File("foo.tex", "\\baz\n\\include{bar}\n\\baz").
		File("bar.tex", `\other`).
		File("unrelated.tex", `\baz`).
		Main("foo.tex").
		Position(0, 1))

	edit, ok := rename.RenameCommand(context.Background(), c, "qux")
	require.True(t, ok)
	assert.Equal(t, map[protocol.DocumentUri][]protocol.TextEdit{
		featuretest.URI("foo.tex"): {
			{Range: text.NewRange(0, 1, 0, 4), NewText: "qux"},
			{Range: text.NewRange(2, 1, 2, 4), NewText: "qux"},
		},
	}, edit.Changes)
}

func TestRenameCommandOutsideCommand(t *testing.T) {
	c := newContext(t, featuretest.New().
		File("foo.tex", `foo \baz`).
		Main("foo.tex").
		Position(0, 1))

	_, ok := rename.RenameCommand(context.Background(), c, "qux")
	assert.False(t, ok)
}

func TestRenameCommandCanceled(t *testing.T) {
	c := newContext(t, featuretest.New().
		File("foo.tex", `\baz`).
		Main("foo.tex").
		Position(0, 2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok := rename.RenameCommand(ctx, c, "qux")
	assert.False(t, ok)
}

func TestPrepareCommandRename(t *testing.T) {
	c := newContext(t, featuretest.New().
		File("foo.tex", `\baz`).
		Main("foo.tex").
		Position(0, 2))

	r, ok := rename.PrepareCommandRename(c)
	require.True(t, ok)
	assert.Equal(t, text.NewRange(0, 1, 0, 4), r)
}

func TestPrepareCommandRenameBeforeBackslash(t *testing.T) {
	c := newContext(t, featuretest.New().
		File("foo.tex", `x \baz`).
		Main("foo.tex").
		Position(0, 2))

	_, ok := rename.PrepareCommandRename(c)
	assert.False(t, ok)
}

func TestPrepareCommandRenameEmptyDocument(t *testing.T) {
	c := newContext(t, featuretest.New().
		File("foo.tex", "").
		Main("foo.tex").
		Position(0, 0))

	_, ok := rename.PrepareCommandRename(c)
	assert.False(t, ok)
}
