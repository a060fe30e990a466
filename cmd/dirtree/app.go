package main

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/go-git/go-billy/v5"

	"github.com/hayeah/dirtree/tree"
)

// Args defines the command-line arguments
type Args struct {
	Path string `arg:"positional" help:"Root folder of the diagram (default: current directory)"`
}

func (Args) Description() string {
	return "Print a tree diagram of a directory and everything below it."
}

// Root is the directory to draw, as a name inside FS.
type Root struct {
	FS   billy.Filesystem
	Name string
}

// App draws the tree of Root to a writer.
type App struct {
	Args   *Args
	Root   *Root
	Walker *tree.Walker
	Logger *slog.Logger
}

// Run writes the diagram to w. Lines produced before a failure are
// still flushed.
func (a *App) Run(w io.Writer) error {
	a.Logger.Debug("walk", "root", a.Root.Name)

	bw := bufio.NewWriter(w)
	walkErr := a.Walker.Walk(bw, a.Root.Name)
	if err := bw.Flush(); err != nil && walkErr == nil {
		return err
	}
	return walkErr
}
