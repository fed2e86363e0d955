// Package memfile implements files.Store over an in-memory tree.
// Paths are absolute and slash-separated; OS separators are converted.
package memfile

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/datatug/filepeek/pkg/files"
)

const maxLinkHops = 40

var errTooManyLinks = errors.New("too many levels of symbolic links")

var _ files.Store = (*Store)(nil)

type Store struct {
	title string
	root  *node
}

type node struct {
	name     string
	isDir    bool
	data     []byte
	link     string
	denied   bool
	infoErr  error
	children []*node
}

type StoreOption func(*Store)

func WithTitle(title string) StoreOption {
	return func(s *Store) {
		s.title = title
	}
}

func NewStore(o ...StoreOption) *Store {
	s := &Store{
		title: "memory",
		root:  &node{name: "/", isDir: true},
	}
	for _, opt := range o {
		opt(s)
	}
	return s
}

func (s *Store) RootTitle() string {
	return s.title
}

func (s *Store) RootURL() url.URL {
	return url.URL{Scheme: "mem", Path: "/"}
}

func (s *Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := s.lookup(name, true)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if !n.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: files.ErrNotDir}
	}
	if n.denied {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	entries := make([]os.DirEntry, 0, len(n.children))
	for _, child := range n.children {
		entries = append(entries, child.dirEntry())
	}
	return entries, nil
}

func (s *Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := s.lookup(name, true)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	if n.infoErr != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: n.infoErr}
	}
	return n.dirEntry().Info()
}

func (s *Store) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := s.lookup(name, true)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if n.denied {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	if n.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: files.ErrIsDir}
	}
	data := make([]byte, len(n.data))
	copy(data, n.data)
	return data, nil
}

// MkdirAll creates the directory and any missing parents.
func (s *Store) MkdirAll(name string) error {
	_, err := s.makeDirs(splitPath(name))
	return err
}

// WriteFile creates or replaces a regular file, creating missing parents.
func (s *Store) WriteFile(name string, data []byte) error {
	n, err := s.create(name, false)
	if err != nil {
		return err
	}
	n.data = append([]byte(nil), data...)
	return nil
}

// Symlink creates name as a link to target. A relative target is resolved
// against the link's directory.
func (s *Store) Symlink(target, name string) error {
	n, err := s.create(name, false)
	if err != nil {
		return err
	}
	n.link = filepath.ToSlash(target)
	return nil
}

// Deny makes ReadDir and ReadFile of name fail with fs.ErrPermission.
func (s *Store) Deny(name string) error {
	n, err := s.lookup(name, false)
	if err != nil {
		return err
	}
	n.denied = true
	return nil
}

// BreakInfo makes the entry's Info() and Stat fail with err.
func (s *Store) BreakInfo(name string, err error) error {
	n, lookupErr := s.lookup(name, false)
	if lookupErr != nil {
		return lookupErr
	}
	n.infoErr = err
	return nil
}

func (s *Store) Remove(name string) error {
	parts := splitPath(name)
	if len(parts) == 0 {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrInvalid}
	}
	parent, err := s.walk(parts[:len(parts)-1], 0)
	if err != nil {
		return &fs.PathError{Op: "remove", Path: name, Err: err}
	}
	for i, child := range parent.children {
		if child.name == parts[len(parts)-1] {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			return nil
		}
	}
	return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
}

func (s *Store) create(name string, isDir bool) (*node, error) {
	parts := splitPath(name)
	if len(parts) == 0 {
		return nil, &fs.PathError{Op: "create", Path: name, Err: fs.ErrExist}
	}
	parent, err := s.makeDirs(parts[:len(parts)-1])
	if err != nil {
		return nil, err
	}
	base := parts[len(parts)-1]
	if existing := parent.child(base); existing != nil {
		if existing.isDir != isDir {
			return nil, &fs.PathError{Op: "create", Path: name, Err: fs.ErrExist}
		}
		return existing, nil
	}
	n := &node{name: base, isDir: isDir}
	parent.children = append(parent.children, n)
	return n, nil
}

func (s *Store) makeDirs(parts []string) (*node, error) {
	n := s.root
	for i, part := range parts {
		child := n.child(part)
		if child == nil {
			child = &node{name: part, isDir: true}
			n.children = append(n.children, child)
		} else if !child.isDir {
			return nil, &fs.PathError{Op: "mkdir", Path: "/" + path.Join(parts[:i+1]...), Err: files.ErrNotDir}
		}
		n = child
	}
	return n, nil
}

func (s *Store) lookup(name string, follow bool) (*node, error) {
	parts := splitPath(name)
	if len(parts) == 0 {
		return s.root, nil
	}
	parent, err := s.walk(parts[:len(parts)-1], 0)
	if err != nil {
		return nil, err
	}
	n := parent.child(parts[len(parts)-1])
	if n == nil {
		return nil, fs.ErrNotExist
	}
	if follow && n.link != "" {
		return s.resolve(parts[:len(parts)-1], n, 0)
	}
	return n, nil
}

// walk descends through parts following symlinks to directories.
func (s *Store) walk(parts []string, hops int) (*node, error) {
	n := s.root
	for i, part := range parts {
		child := n.child(part)
		if child == nil {
			return nil, fs.ErrNotExist
		}
		if child.link != "" {
			var err error
			if child, err = s.resolve(parts[:i], child, hops); err != nil {
				return nil, err
			}
		}
		if !child.isDir {
			return nil, files.ErrNotDir
		}
		n = child
	}
	return n, nil
}

func (s *Store) resolve(dirParts []string, link *node, hops int) (*node, error) {
	if hops >= maxLinkHops {
		return nil, errTooManyLinks
	}
	target := link.link
	if !strings.HasPrefix(target, "/") {
		target = "/" + path.Join(append(append([]string{}, dirParts...), target)...)
	}
	parts := splitPath(target)
	if len(parts) == 0 {
		return s.root, nil
	}
	parent, err := s.walk(parts[:len(parts)-1], hops+1)
	if err != nil {
		return nil, err
	}
	n := parent.child(parts[len(parts)-1])
	if n == nil {
		return nil, fs.ErrNotExist
	}
	if n.link != "" {
		return s.resolve(parts[:len(parts)-1], n, hops+1)
	}
	return n, nil
}

func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (n *node) dirEntry() files.DirEntry {
	switch {
	case n.link != "":
		return files.NewDirEntry(n.name, false, files.Mode(os.ModeSymlink|0o777), files.Size(int64(len(n.link))), files.InfoErr(n.infoErr))
	case n.isDir:
		return files.NewDirEntry(n.name, true, files.Mode(os.ModeDir|0o755), files.InfoErr(n.infoErr))
	default:
		return files.NewDirEntry(n.name, false, files.Mode(0o644), files.Size(int64(len(n.data))), files.InfoErr(n.infoErr))
	}
}

func splitPath(name string) []string {
	cleaned := path.Clean("/" + filepath.ToSlash(name))
	if cleaned == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(cleaned, "/"), "/")
}
