// Package symbols holds the database of commands rendered as symbols.
package symbols

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/symbols.yaml
var source []byte

// Command is a symbol command. An empty Component marks a kernel command.
type Command struct {
	Command   string `yaml:"command"`
	Component string `yaml:"component,omitempty"`
	Image     string `yaml:"image,omitempty"`
}

type Database struct {
	Commands []Command `yaml:"commands"`
}

var Get = sync.OnceValue(func() *Database {
	db, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return db
})

func Parse(raw []byte) (*Database, error) {
	var db Database
	if err := yaml.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("failed to decode symbol database: %w", err)
	}
	return &db, nil
}
