package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/golang-cz/devslog"

	"github.com/hayeah/dirtree/tree"
)

// ProvideArgs parses cli args
func ProvideArgs() *Args {
	args := &Args{}
	arg.MustParse(args)
	return args
}

// ProvideLogger logs to stderr so stdout carries only the diagram.
func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{Level: cfg.LogLevel},
	}))
}

// ProvideRoot resolves the positional path, or the current working
// directory when none is given.
func ProvideRoot(args *Args) (*Root, error) {
	path := args.Path
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = wd
	}

	fsys, name, err := tree.NewOSFilesystem(path)
	if err != nil {
		return nil, err
	}
	return &Root{FS: fsys, Name: name}, nil
}

// ProvideWalker constructs a Walker over the root's filesystem.
func ProvideWalker(root *Root, cfg *Config, logger *slog.Logger) *tree.Walker {
	tw := tree.NewWalker(root.FS)
	tw.Style = cfg.Style
	tw.Sort = cfg.Sort
	tw.Logger = logger
	return tw
}
