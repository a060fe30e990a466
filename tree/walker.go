// Package tree draws a directory and everything below it as an ASCII
// branch diagram:
//
//	|--- root
//	|    |--- a.txt
//	|    |--- sub
//	|    |    |--- b.txt
package tree

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
)

// Walker renders directory subtrees found on FS.
type Walker struct {
	FS     billy.Filesystem
	Style  Style
	Sort   bool // sort siblings by name instead of keeping enumeration order
	Logger *slog.Logger
}

// NewWalker returns a Walker over fsys using DefaultStyle and the
// filesystem's enumeration order.
func NewWalker(fsys billy.Filesystem) *Walker {
	return &Walker{
		FS:     fsys,
		Style:  DefaultStyle,
		Logger: discardLogger,
	}
}

// Walk checks that root is a readable directory and writes its diagram
// to w. Nothing is written when the check fails.
func (tw *Walker) Walk(w io.Writer, root string) error {
	fi, err := tw.FS.Stat(root)
	if err != nil {
		return classify(root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrNotADirectory)
	}

	children, err := tw.list(root)
	if err != nil {
		return err
	}
	if err := tw.writeBranch(w, 0, filepath.Base(root)); err != nil {
		return err
	}
	return tw.visitChildren(w, root, children, 0)
}

// Visit writes the line for the directory at path and then, depth first,
// the lines of everything below it. Files get one line each at depth+1;
// entries that are neither directories nor regular files are skipped.
//
// An enumeration failure anywhere in the subtree stops the walk and is
// returned. Lines written before the failure are not taken back.
func (tw *Walker) Visit(w io.Writer, path string, depth int) error {
	if err := tw.writeBranch(w, depth, filepath.Base(path)); err != nil {
		return err
	}

	children, err := tw.list(path)
	if err != nil {
		return err
	}
	return tw.visitChildren(w, path, children, depth)
}

func (tw *Walker) visitChildren(w io.Writer, path string, children []os.FileInfo, depth int) error {
	for _, child := range children {
		childPath := tw.FS.Join(path, child.Name())

		fi, ok := tw.resolve(childPath, child)
		if !ok {
			continue
		}

		switch {
		case fi.IsDir():
			tw.logger().Debug("descend", "path", childPath, "depth", depth+1)
			if err := tw.Visit(w, childPath, depth+1); err != nil {
				return err
			}
		case fi.Mode().IsRegular():
			if err := tw.writeBranch(w, depth+1, child.Name()); err != nil {
				return err
			}
		default:
			tw.logger().Debug("skip entry", "path", childPath, "mode", fi.Mode().String())
		}
	}

	return nil
}

// list enumerates the immediate children of the directory at path.
func (tw *Walker) list(path string) ([]os.FileInfo, error) {
	children, err := tw.FS.ReadDir(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if tw.Sort {
		sort.Slice(children, func(i, j int) bool {
			return children[i].Name() < children[j].Name()
		})
	}
	return children, nil
}

// resolve follows symlinks so a link is drawn as whatever it points to.
// A link that cannot be followed is reported as not ok.
func (tw *Walker) resolve(path string, fi os.FileInfo) (os.FileInfo, bool) {
	if fi.Mode()&os.ModeSymlink == 0 {
		return fi, true
	}

	target, err := tw.FS.Stat(path)
	if err != nil {
		tw.logger().Debug("skip broken link", "path", path, "error", err)
		return nil, false
	}
	return target, true
}

func (tw *Walker) writeBranch(w io.Writer, depth int, name string) error {
	_, err := fmt.Fprintln(w, tw.Style.Branch(depth)+name)
	return err
}

var discardLogger = slog.New(slog.DiscardHandler)

func (tw *Walker) logger() *slog.Logger {
	if tw.Logger == nil {
		return discardLogger
	}
	return tw.Logger
}
