package files

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrNotDir and ErrIsDir are returned by stores that have no OS error to
// report for a directory operation on a file or vice versa.
var (
	ErrNotDir = errors.New("not a directory")
	ErrIsDir  = errors.New("is a directory")
)

// Sentinels that a *DirError matches with errors.Is according to its kind.
var (
	ErrNotFound      = errors.New("directory not found")
	ErrAccess        = errors.New("directory not readable")
	ErrNotADirectory = errors.New("path is not a directory")
)

type DirErrorKind int

const (
	NotFound DirErrorKind = iota + 1
	AccessDenied
	NotADirectory
)

func (k DirErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case AccessDenied:
		return "access denied"
	case NotADirectory:
		return "not a directory"
	default:
		return fmt.Sprintf("DirErrorKind(%d)", int(k))
	}
}

func (k DirErrorKind) sentinel() error {
	switch k {
	case NotFound:
		return ErrNotFound
	case AccessDenied:
		return ErrAccess
	case NotADirectory:
		return ErrNotADirectory
	default:
		return nil
	}
}

// DirError reports a directory that could not be listed.
type DirError struct {
	Kind DirErrorKind
	Path string
	Err  error
}

// NewDirError classifies err returned by Store.ReadDir for path.
// Anything that is neither a missing path nor a file is treated as unreadable.
func NewDirError(path string, err error) *DirError {
	kind := AccessDenied
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = NotFound
	case errors.Is(err, ErrNotDir), errors.Is(err, syscall.ENOTDIR):
		kind = NotADirectory
	}
	return &DirError{Kind: kind, Path: path, Err: err}
}

func (e *DirError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot open %s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("cannot open %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *DirError) Unwrap() error {
	return e.Err
}

func (e *DirError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// ReadError reports a file whose content could not be loaded or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
