package listing

import "strconv"

type Kind int

const (
	RegularFile Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

// ParentName is the name of the synthetic entry that navigates up.
const ParentName = ".."

// Entry is an immutable directory child as shown to the user.
type Entry struct {
	name      string
	kind      Kind
	size      int64
	sizeKnown bool
}

func NewDirEntry(name string) Entry {
	return Entry{name: name, kind: Directory}
}

func NewFileEntry(name string, size int64) Entry {
	return Entry{name: name, kind: RegularFile, size: size, sizeKnown: true}
}

// NewFileEntryWithoutSize is used when the size could not be retrieved.
func NewFileEntryWithoutSize(name string) Entry {
	return Entry{name: name, kind: RegularFile}
}

func ParentEntry() Entry {
	return NewDirEntry(ParentName)
}

func (e Entry) Name() string { return e.name }
func (e Entry) Kind() Kind   { return e.kind }
func (e Entry) IsDir() bool  { return e.kind == Directory }
func (e Entry) IsParent() bool {
	return e.kind == Directory && e.name == ParentName
}

// Size reports the byte size of a regular file and whether it is known.
func (e Entry) Size() (int64, bool) {
	return e.size, e.sizeKnown
}

// Description is "directory", "<N> bytes" or empty when the size is unknown.
func (e Entry) Description() string {
	if e.kind == Directory {
		return "directory"
	}
	if !e.sizeKnown {
		return ""
	}
	return strconv.FormatInt(e.size, 10) + " bytes"
}
