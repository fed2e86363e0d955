package fpsettings

import (
	"fmt"

	"github.com/datatug/filepeek/pkg/fsutils"
)

const DefaultDir = "."

// Options are the startup settings taken from the command line.
type Options struct {
	Dir     string
	LogFile string
}

// Resolve makes Dir absolute, expanding a leading ~. An empty Dir means
// the working directory. LogFile gets ~ expansion only.
func Resolve(o Options) (Options, error) {
	dir, err := fsutils.AbsDir(o.Dir)
	if err != nil {
		return o, fmt.Errorf("failed to resolve directory %q: %w", o.Dir, err)
	}
	o.Dir = dir
	if o.LogFile != "" {
		o.LogFile = fsutils.ExpandHome(o.LogFile)
	}
	return o, nil
}
