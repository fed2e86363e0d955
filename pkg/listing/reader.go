// Package listing reads a directory into the filtered, ordered entries the
// browser displays.
package listing

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/datatug/filepeek/pkg/files"
)

// ReadDir lists dirPath with DefaultFilter.
func ReadDir(ctx context.Context, store files.Store, dirPath string) ([]Entry, error) {
	return DefaultFilter.ReadDir(ctx, store, dirPath)
}

// ReadDir returns the visible children of dirPath sorted by name in byte
// order. A failure to list returns *files.DirError; a failure to get the
// size of a single file only leaves that entry without a size.
func (f Filter) ReadDir(ctx context.Context, store files.Store, dirPath string) ([]Entry, error) {
	children, err := store.ReadDir(ctx, dirPath)
	if err != nil {
		return nil, files.NewDirError(dirPath, err)
	}
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		entry := newEntry(ctx, store, dirPath, child)
		if !f.IsVisible(entry.name, entry.IsDir()) {
			continue
		}
		entries = append(entries, entry)
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.name, b.name)
	})
	return entries, nil
}

func newEntry(ctx context.Context, store files.Store, dirPath string, child os.DirEntry) Entry {
	name := child.Name()
	if child.IsDir() {
		return NewDirEntry(name)
	}
	if child.Type()&fs.ModeSymlink != 0 {
		target, err := store.Stat(ctx, filepath.Join(dirPath, name))
		if err != nil || target == nil {
			return NewFileEntryWithoutSize(name)
		}
		if target.IsDir() {
			return NewDirEntry(name)
		}
		return NewFileEntry(name, target.Size())
	}
	info, err := child.Info()
	if err != nil || info == nil {
		return NewFileEntryWithoutSize(name)
	}
	return NewFileEntry(name, info.Size())
}
