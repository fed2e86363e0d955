package browser

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/datatug/filepeek/pkg/files"
	"github.com/datatug/filepeek/pkg/fsutils"
	"github.com/datatug/filepeek/pkg/listing"
)

// Open lists dir and returns the FileList state for it.
func Open(ctx context.Context, store files.Store, dir string) (State, Frame, error) {
	entries, err := listing.ReadDir(ctx, store, dir)
	if err != nil {
		return State{}, nil, err
	}
	s := listState(listing.New(dir, entries))
	return s, FrameOf(s), nil
}

// Step applies ev to s.
//
// A nil frame means s is returned unchanged: the event was a no-op or it
// failed with err, e.g. a *files.DirError when a directory can not be opened.
// A non-nil frame means the transition happened; err may still be set when
// a file could not be read and its error message became the content.
func Step(ctx context.Context, store files.Store, s State, ev Event) (State, Frame, error) {
	switch ev := ev.(type) {
	case Quit:
		return s, nil, ErrQuit
	case Back:
		if s.Mode != FileContent {
			return s, nil, nil
		}
		return reopen(ctx, store, s, s.Dir)
	case EntrySelected:
		if s.Mode != FileList {
			return s, nil, nil
		}
		entry, ok := s.Listing.Entry(ev.Index)
		if !ok {
			return s, nil, fmt.Errorf("%w: index %d of %d", ErrNoSuchEntry, ev.Index, len(s.Listing.Entries))
		}
		return selectEntry(ctx, store, s, entry)
	default:
		return s, nil, fmt.Errorf("unknown event %T", ev)
	}
}

func selectEntry(ctx context.Context, store files.Store, s State, entry listing.Entry) (State, Frame, error) {
	switch {
	case entry.IsParent():
		return reopen(ctx, store, s, fsutils.ParentDir(s.Dir))
	case entry.IsDir():
		return reopen(ctx, store, s, filepath.Join(s.Dir, entry.Name()))
	default:
		name := entry.Name()
		content, err := files.ReadText(ctx, store, filepath.Join(s.Dir, name))
		if err != nil {
			content = fmt.Sprintf("Error reading file: %v", err)
		}
		next := s.withContent(name, content)
		return next, FrameOf(next), err
	}
}

// reopen lists dir afresh. On failure the current state is kept.
func reopen(ctx context.Context, store files.Store, s State, dir string) (State, Frame, error) {
	next, frame, err := Open(ctx, store, dir)
	if err != nil {
		return s, nil, err
	}
	return next, frame, nil
}
