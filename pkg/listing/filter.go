package listing

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Filter decides which directory children are shown.
type Filter struct {
	skipDirs  []glob.Glob
	skipFiles []glob.Glob
}

// DefaultFilter hides VCS and tool directories, Finder metadata and dotfiles.
var DefaultFilter = MustFilter(
	[]string{".git", ".gemini"},
	[]string{".DS_Store"},
)

// NewFilter compiles the names dropped for directories and for files.
// Names are glob patterns; a name without wildcards matches only itself.
func NewFilter(skipDirs, skipFiles []string) (Filter, error) {
	var (
		f   Filter
		err error
	)
	if f.skipDirs, err = compile(skipDirs); err != nil {
		return Filter{}, err
	}
	if f.skipFiles, err = compile(skipFiles); err != nil {
		return Filter{}, err
	}
	return f, nil
}

func MustFilter(skipDirs, skipFiles []string) Filter {
	f, err := NewFilter(skipDirs, skipFiles)
	if err != nil {
		panic(err)
	}
	return f
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid skip pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// IsVisible applies the named exclusions first, then drops any other name
// starting with a dot.
func (f Filter) IsVisible(name string, isDir bool) bool {
	skip := f.skipFiles
	if isDir {
		skip = f.skipDirs
	}
	for _, g := range skip {
		if g.Match(name) {
			return false
		}
	}
	return !strings.HasPrefix(name, ".")
}
