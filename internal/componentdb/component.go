// Package componentdb describes LaTeX packages and classes: the commands
// and environments they define and the components they load.
package componentdb

import (
	_ "embed"
	"fmt"
	"path"
	"sync"

	"github.com/efoerster/texlab/internal/syntax/latex"
	"github.com/efoerster/texlab/internal/workspace"

	"gopkg.in/yaml.v3"
)

//go:embed data/components.yaml
var source []byte

type Argument struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image,omitempty"`
}

// Parameter lists the values one argument of a command accepts.
type Parameter []Argument

type Command struct {
	Name       string      `yaml:"name"`
	Image      string      `yaml:"image,omitempty"`
	Parameters []Parameter `yaml:"parameters,omitempty"`
}

type Component struct {
	FileNames    []string  `yaml:"fileNames"`
	References   []string  `yaml:"references,omitempty"`
	Commands     []Command `yaml:"commands,omitempty"`
	Environments []string  `yaml:"environments,omitempty"`
}

// Name is the first file name without its extension.
func (c *Component) Name() string {
	if len(c.FileNames) == 0 {
		return ""
	}
	name := c.FileNames[0]
	return name[:len(name)-len(path.Ext(name))]
}

func (c *Component) HasFile(fileName string) bool {
	for _, name := range c.FileNames {
		if name == fileName {
			return true
		}
	}
	return false
}

type Database struct {
	Components []Component `yaml:"components"`
}

// Default returns the database shipped with the server.
var Default = sync.OnceValue(func() *Database {
	db, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return db
})

func Parse(raw []byte) (*Database, error) {
	var db Database
	if err := yaml.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("failed to decode component database: %w", err)
	}
	return &db, nil
}

// Merge returns a database with the components of other added after those
// of db. Components of other replace components sharing a file name.
func (db *Database) Merge(other *Database) *Database {
	merged := &Database{}
	for _, component := range db.Components {
		replaced := false
		for _, fileName := range component.FileNames {
			if _, ok := other.FindComponent(fileName); ok {
				replaced = true
				break
			}
		}
		if !replaced {
			merged.Components = append(merged.Components, component)
		}
	}
	merged.Components = append(merged.Components, other.Components...)
	return merged
}

func (db *Database) FindComponent(fileName string) (*Component, bool) {
	for i := range db.Components {
		if db.Components[i].HasFile(fileName) {
			return &db.Components[i], true
		}
	}
	return nil, false
}

// FileNames returns the file names of all components with extension ext.
func (db *Database) FileNames(ext string) []string {
	var names []string
	for _, component := range db.Components {
		for _, name := range component.FileNames {
			if path.Ext(name) == ext {
				names = append(names, name)
			}
		}
	}
	return names
}

// LinkedComponents returns the components loaded by the documents of
// subset, directly or through references, without duplicates.
func (db *Database) LinkedComponents(subset workspace.Subset) []*Component {
	var queue []string
	for _, doc := range subset.Documents {
		data, ok := doc.Latex()
		if !ok {
			continue
		}
		for _, n := range data.Root().Descendants() {
			if include, ok := latex.CastPackageInclude(n); ok {
				queue = append(queue, includedFiles(include.Names, ".sty")...)
			} else if include, ok := latex.CastClassInclude(n); ok {
				queue = append(queue, includedFiles(include.Names, ".cls")...)
			}
		}
	}

	var components []*Component
	seen := make(map[*Component]bool)
	for len(queue) > 0 {
		fileName := queue[0]
		queue = queue[1:]
		component, ok := db.FindComponent(fileName)
		if !ok || seen[component] {
			continue
		}
		seen[component] = true
		components = append(components, component)
		queue = append(queue, component.References...)
	}
	return components
}

func includedFiles(names func() (latex.CurlyGroupWordList, bool), ext string) []string {
	list, ok := names()
	if !ok {
		return nil
	}
	var files []string
	for _, key := range list.Keys() {
		files = append(files, key.String()+ext)
	}
	return files
}
