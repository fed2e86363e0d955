package files

import (
	"os"
	"time"
)

type FileInfoOption func(*FileInfo)

type FileInfo struct {
	DirEntry
	size    int64
	mode    os.FileMode
	sys     any
	err     error
}

func NewFileInfo(dirEntry DirEntry, o ...FileInfoOption) (info *FileInfo) {
	info = &FileInfo{
		DirEntry: dirEntry,
	}
	for _, opt := range o {
		opt(info)
	}
	return
}

func Size(v int64) FileInfoOption {
	return func(info *FileInfo) {
		info.size = v
	}
}

// Mode overrides the mode derived from the entry kind, e.g. to mark a symlink.
func Mode(v os.FileMode) FileInfoOption {
	return func(info *FileInfo) {
		info.mode = v
	}
}

// InfoErr makes DirEntry.Info() fail with err, as it does when a file
// disappears between listing and stat.
func InfoErr(err error) FileInfoOption {
	return func(info *FileInfo) {
		info.err = err
	}
}

func (f *FileInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}
func (f *FileInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}
func (f *FileInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	if f.mode != 0 {
		return f.mode
	}
	return f.Type()
}
// ModTime is always zero; listings never show modification times.
func (f *FileInfo) ModTime() time.Time {
	return time.Time{}
}
func (f *FileInfo) IsDir() bool {
	if f == nil {
		return false
	}
	return f.isDir
}
func (f *FileInfo) Sys() any {
	if f == nil {
		return nil
	}
	return f.sys
}
