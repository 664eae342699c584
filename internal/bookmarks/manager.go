package bookmarks

import (
	"sort"
	"time"

	"github.com/skiffsh/skiff/internal/log"
)

// MaxSlots is the number of numbered jump slots in the sidebar.
const MaxSlots = 9

// Manager is the in-memory bookmark index. Load failures yield an
// empty set and save failures keep the in-memory copy live; neither is
// fatal to the session.
type Manager struct {
	store     Store
	bookmarks []Bookmark
}

// NewManager loads the persisted bookmarks through store.
func NewManager(store Store) *Manager {
	m := &Manager{store: store}
	m.Reload()
	return m
}

// Reload re-reads the store, replacing the in-memory set.
func (m *Manager) Reload() {
	bookmarks, err := m.store.Load()
	if err != nil {
		log.Printf("bookmarks: load failed: %v", err)
		bookmarks = nil
	}
	m.bookmarks = bookmarks
}

// Ranked returns the bookmarks ordered by last access, newest first.
func (m *Manager) Ranked() []Bookmark {
	ranked := make([]Bookmark, len(m.bookmarks))
	copy(ranked, m.bookmarks)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LastAccessed.After(ranked[j].LastAccessed)
	})
	return ranked
}

// Slot returns the bookmark in 1-based slot n (1..9), following the
// ranked order.
func (m *Manager) Slot(n int) (Bookmark, bool) {
	if n < 1 || n > MaxSlots {
		return Bookmark{}, false
	}
	ranked := m.Ranked()
	if n > len(ranked) {
		return Bookmark{}, false
	}
	return ranked[n-1], true
}

// Add saves a bookmark for path, or refreshes its access time when it
// already exists.
func (m *Manager) Add(path string) {
	for i := range m.bookmarks {
		if m.bookmarks[i].Path == path {
			m.bookmarks[i].LastAccessed = time.Now().UTC()
			m.persist()
			return
		}
	}
	m.bookmarks = append(m.bookmarks, New(path))
	m.persist()
}

// Touch refreshes the access time of the bookmark for path, if any.
func (m *Manager) Touch(path string) {
	for i := range m.bookmarks {
		if m.bookmarks[i].Path == path {
			m.bookmarks[i].LastAccessed = time.Now().UTC()
			m.persist()
			return
		}
	}
}

// Remove drops the bookmark for path.
func (m *Manager) Remove(path string) {
	kept := m.bookmarks[:0]
	for _, b := range m.bookmarks {
		if b.Path != path {
			kept = append(kept, b)
		}
	}
	m.bookmarks = kept
	m.persist()
}

// Len returns the number of bookmarks.
func (m *Manager) Len() int {
	return len(m.bookmarks)
}

// IsEmpty reports whether no bookmarks exist.
func (m *Manager) IsEmpty() bool {
	return len(m.bookmarks) == 0
}

func (m *Manager) persist() {
	if err := m.store.Save(m.bookmarks); err != nil {
		log.Printf("bookmarks: save failed: %v", err)
	}
}
