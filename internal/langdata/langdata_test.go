package langdata_test

import (
	"testing"

	"github.com/efoerster/texlab/internal/langdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTables(t *testing.T) {
	data := langdata.Get()
	assert.Contains(t, data.Colors, "black")
	assert.Contains(t, data.Colors, "YellowOrange")
	assert.Contains(t, data.TikzLibraries, "3d")
	assert.Contains(t, data.TikzLibraries, "turtle")
	assert.Contains(t, data.PgfLibraries, "arrows.meta")
	assert.NotEmpty(t, data.EntryTypes)
	assert.NotEmpty(t, data.Fields)
}

func TestFindEntryTypeIgnoresCase(t *testing.T) {
	entry, ok := langdata.Get().FindEntryType("ARTICLE")
	require.True(t, ok)
	assert.Equal(t, "article", entry.Name)

	_, ok = langdata.Get().FindField("nonsense")
	assert.False(t, ok)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	_, err := langdata.Parse([]byte("colors: {"))
	assert.Error(t, err)
}
