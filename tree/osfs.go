package tree

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// NewOSFilesystem resolves path on the host filesystem and returns a
// filesystem rooted at its parent directory, together with the name of
// path inside it. Walking that name draws path's base name as the root.
func NewOSFilesystem(path string) (billy.Filesystem, string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return osfs.New(filepath.Dir(absPath)), filepath.Base(absPath), nil
}
