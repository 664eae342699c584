// Package navigation implements the directory-tree browser behind
// `cd -list`.
package navigation

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one row of the browser: a subdirectory, or the synthetic
// ".." parent entry.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// Lister lists the immediate subdirectories of a path. Implementations
// return an empty slice on read failure.
type Lister interface {
	List(path string) []Entry
}

// DirLister lists real directories from the filesystem.
type DirLister struct{}

// List returns the visible subdirectories of path, case-insensitively
// sorted. Hidden entries and files are skipped; an unreadable directory
// yields nil.
func (DirLister) List(path string) []Entry {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil
	}

	var entries []Entry
	for _, d := range dirents {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		entries = append(entries, Entry{
			Name:  d.Name(),
			Path:  filepath.Join(path, d.Name()),
			IsDir: true,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries
}

// Browser holds the cursor state for one directory listing.
type Browser struct {
	lister   Lister
	current  string
	entries  []Entry
	selected int
	scroll   int
}

// NewBrowser returns a Browser backed by the given lister.
func NewBrowser(lister Lister) *Browser {
	return &Browser{lister: lister}
}

// Open starts browsing at path, resetting selection and scroll.
func (b *Browser) Open(path string) {
	b.current = path
	b.selected = 0
	b.scroll = 0
	b.reload()
}

// Refresh re-lists the current directory. The selection is preserved
// when still in bounds and clamped to the last entry otherwise.
func (b *Browser) Refresh() {
	b.reload()
}

func (b *Browser) reload() {
	b.entries = b.entries[:0]

	if parent := filepath.Dir(b.current); parent != b.current {
		b.entries = append(b.entries, Entry{Name: "..", Path: parent, IsDir: true})
	}
	b.entries = append(b.entries, b.lister.List(b.current)...)

	if b.selected >= len(b.entries) {
		b.selected = max(0, len(b.entries)-1)
	}
	if b.scroll > b.selected {
		b.scroll = b.selected
	}
}

// Current returns the directory being browsed.
func (b *Browser) Current() string {
	return b.current
}

// Entries returns the full entry list, parent entry first.
func (b *Browser) Entries() []Entry {
	return b.entries
}

// Selected returns the selection index.
func (b *Browser) Selected() int {
	return b.selected
}

// Scroll returns the scroll offset.
func (b *Browser) Scroll() int {
	return b.scroll
}

// MoveUp shifts the selection one entry up, dragging the scroll offset
// along when the selection leaves the window.
func (b *Browser) MoveUp() {
	if b.selected > 0 {
		b.selected--
		if b.selected < b.scroll {
			b.scroll = b.selected
		}
	}
}

// MoveDown shifts the selection one entry down.
func (b *Browser) MoveDown() {
	if b.selected < len(b.entries)-1 {
		b.selected++
	}
}

// AdjustScroll clamps the scroll offset so the selection stays inside a
// window of visibleHeight rows.
func (b *Browser) AdjustScroll(visibleHeight int) {
	if visibleHeight <= 0 {
		return
	}
	if b.selected >= b.scroll+visibleHeight {
		b.scroll = b.selected - visibleHeight + 1
	} else if b.selected < b.scroll {
		b.scroll = b.selected
	}
}

// EnterSelected descends into the selected directory. The parent entry
// is confirmed with Enter, not descended into.
func (b *Browser) EnterSelected() {
	if b.selected >= len(b.entries) {
		return
	}
	entry := b.entries[b.selected]
	if entry.IsDir && entry.Name != ".." {
		b.Open(entry.Path)
	}
}

// GoUp re-opens the parent of the current directory; at the filesystem
// root it does nothing.
func (b *Browser) GoUp() {
	if parent := filepath.Dir(b.current); parent != b.current {
		b.Open(parent)
	}
}

// SelectedPath returns the path of the highlighted entry, or "" when
// the listing is empty.
func (b *Browser) SelectedPath() (string, bool) {
	if b.selected < len(b.entries) {
		return b.entries[b.selected].Path, true
	}
	return "", false
}

// VisibleEntries returns up to visibleHeight (index, entry) pairs
// starting at the scroll offset.
func (b *Browser) VisibleEntries(visibleHeight int) []IndexedEntry {
	if visibleHeight <= 0 {
		return nil
	}
	end := min(b.scroll+visibleHeight, len(b.entries))
	visible := make([]IndexedEntry, 0, max(0, end-b.scroll))
	for i := b.scroll; i < end; i++ {
		visible = append(visible, IndexedEntry{Index: i, Entry: b.entries[i]})
	}
	return visible
}

// IndexedEntry pairs an entry with its absolute index in the listing.
type IndexedEntry struct {
	Index int
	Entry Entry
}

// IsSelected reports whether index is the highlighted row.
func (b *Browser) IsSelected(index int) bool {
	return index == b.selected
}
