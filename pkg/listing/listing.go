package listing

import "github.com/datatug/filepeek/pkg/fsutils"

// Listing is what the browser shows for a directory: the entries read from
// it, preceded by ".." unless Dir is the filesystem root.
type Listing struct {
	Dir     string
	Entries []Entry
}

func New(dir string, entries []Entry) Listing {
	items := make([]Entry, 0, len(entries)+1)
	if !fsutils.IsRoot(dir) {
		items = append(items, ParentEntry())
	}
	items = append(items, entries...)
	return Listing{Dir: dir, Entries: items}
}

func (l Listing) HasParent() bool {
	return len(l.Entries) > 0 && l.Entries[0].IsParent()
}

// Entry returns the entry at index i as displayed, counting "..".
func (l Listing) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(l.Entries) {
		return Entry{}, false
	}
	return l.Entries[i], true
}
