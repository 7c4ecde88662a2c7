// Package langdata exposes the static LaTeX and BibTeX tables shipped with
// the server.
package langdata

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/langdata.yaml
var source []byte

type Documented struct {
	Name          string `yaml:"name"`
	Documentation string `yaml:"documentation"`
}

type LanguageData struct {
	Colors        []string     `yaml:"colors"`
	TikzLibraries []string     `yaml:"tikzLibraries"`
	PgfLibraries  []string     `yaml:"pgfLibraries"`
	EntryTypes    []Documented `yaml:"entryTypes"`
	Fields        []Documented `yaml:"fields"`
}

// Get returns the tables, decoding them on first use.
var Get = sync.OnceValue(func() *LanguageData {
	data, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return data
})

func Parse(raw []byte) (*LanguageData, error) {
	var data LanguageData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode language data: %w", err)
	}
	return &data, nil
}

// FindEntryType looks up an entry type case-insensitively.
func (d *LanguageData) FindEntryType(name string) (Documented, bool) {
	return find(d.EntryTypes, name)
}

func (d *LanguageData) FindField(name string) (Documented, bool) {
	return find(d.Fields, name)
}

func find(list []Documented, name string) (Documented, bool) {
	for _, item := range list {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return Documented{}, false
}
