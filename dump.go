package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/efoerster/texlab/internal/config"
	"github.com/efoerster/texlab/internal/graph"
	"github.com/efoerster/texlab/internal/manager"
	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/bibtex"
	"github.com/efoerster/texlab/internal/syntax/latex"
	"github.com/efoerster/texlab/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	dumpConfigFlag string
	dumpGraphFlag  bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the syntax tree or include graph of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump(args[0])
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpConfigFlag, "config", "", "Path to a JSON config file")
	dumpCmd.Flags().BoolVar(&dumpGraphFlag, "graph", false, "Print the include graph as DOT instead of the syntax tree")
}

func runDump(path string) error {
	cfg := config.Default()
	if dumpConfigFlag != "" {
		f, err := os.Open(dumpConfigFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		if cfg, err = config.LoadFromJSON(f); err != nil {
			return err
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	uri := "file://" + filepath.ToSlash(abs)
	content, err := manager.FileLoader(uri)
	if err != nil {
		return err
	}

	var load manager.Loader
	if cfg.LoadIncludes {
		load = manager.FileLoader
	}
	dm := manager.NewDocumentManager(workspace.New(), load)
	doc := dm.Open(uri, "", content)

	if dumpGraphFlag {
		subset, _ := dm.Workspace().Subset(uri)
		return graph.WriteDOT(os.Stdout, graph.Build(subset.Documents))
	}

	if data, ok := doc.Latex(); ok {
		return syntax.Dump(os.Stdout, data.Root(), latex.KindName)
	}
	if data, ok := doc.Bibtex(); ok {
		return syntax.Dump(os.Stdout, data.Root(), bibtex.KindName)
	}
	return fmt.Errorf("unsupported document %s", path)
}
