package fsutils

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

var expandHome = homedir.Expand

// ExpandHome expands leading ~ to the user's home directory.
// The path is returned unchanged if the home directory can not be determined.
func ExpandHome(p string) string {
	expanded, err := expandHome(p)
	if err != nil {
		return p
	}
	return expanded
}

// IsRoot reports whether dir is a filesystem root such as "/" or `C:\`.
func IsRoot(dir string) bool {
	cleaned := filepath.Clean(dir)
	return filepath.Dir(cleaned) == cleaned
}

// ParentDir returns the directory containing dir; the root is its own parent.
func ParentDir(dir string) string {
	return filepath.Dir(filepath.Clean(dir))
}

// AbsDir expands ~ and makes dir absolute. An empty dir means the working directory.
func AbsDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	return filepath.Abs(ExpandHome(dir))
}
