package completion

import "github.com/efoerster/texlab/internal/syntax"

// Item is a completion candidate replacing Range of the main document.
type Item struct {
	Range syntax.TextRange
	Data  ItemData
}

// ItemData is the closed set of candidate payloads.
type ItemData interface {
	Label() string
	isItemData()
}

type Acronym struct {
	Name string
}

type Argument struct {
	Name  string
	Image string
}

type Color struct {
	Name string
}

// CommandSymbol is a command rendered as a glyph. An empty Component marks
// a kernel command.
type CommandSymbol struct {
	Name      string
	Component string
	Image     string
}

type Citation struct {
	Key       string
	EntryType string
}

// Component is a package or class name, without extension.
type Component struct {
	Name string
	Ext  string
}

type TikzLibrary struct {
	Name string
}

type EntryType struct {
	Name          string
	Documentation string
}

type Field struct {
	Name          string
	Documentation string
}

func (d Acronym) Label() string       { return d.Name }
func (d Argument) Label() string      { return d.Name }
func (d Color) Label() string         { return d.Name }
func (d CommandSymbol) Label() string { return d.Name }
func (d Citation) Label() string      { return d.Key }
func (d Component) Label() string     { return d.Name }
func (d TikzLibrary) Label() string   { return d.Name }
func (d EntryType) Label() string     { return d.Name }
func (d Field) Label() string         { return d.Name }

func (Acronym) isItemData()       {}
func (Argument) isItemData()      {}
func (Color) isItemData()         {}
func (CommandSymbol) isItemData() {}
func (Citation) isItemData()      {}
func (Component) isItemData()     {}
func (TikzLibrary) isItemData()   {}
func (EntryType) isItemData()     {}
func (Field) isItemData()         {}
