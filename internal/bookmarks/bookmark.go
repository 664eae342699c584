// Package bookmarks manages saved directory bookmarks: a JSON-backed
// store and an in-memory index ranked by last access.
package bookmarks

import (
	"fmt"
	"time"

	"github.com/skiffsh/skiff/internal/shell"
)

// Bookmark is one saved directory. Path is the uniqueness key.
type Bookmark struct {
	Path         string    `json:"path"`
	LastAccessed time.Time `json:"last_accessed"`
	CreatedAt    time.Time `json:"created_at"`
}

// New returns a bookmark for path stamped with the current time.
func New(path string) Bookmark {
	now := time.Now().UTC()
	return Bookmark{Path: path, LastAccessed: now, CreatedAt: now}
}

// DisplayName returns the path with the home prefix abbreviated to ~.
func (b Bookmark) DisplayName() string {
	return shell.AbbreviateHome(b.Path)
}

// TimeAgo renders the time since last access as a compact label:
// "now" under a minute, then Nm, Nh, Nd, Nw, and Nmo from 30 days on.
func (b Bookmark) TimeAgo(now time.Time) string {
	d := now.Sub(b.LastAccessed)

	if d < time.Minute {
		return "now"
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	days := int(d.Hours() / 24)
	if days < 7 {
		return fmt.Sprintf("%dd", days)
	}
	if weeks := days / 7; weeks < 4 {
		return fmt.Sprintf("%dw", weeks)
	}
	return fmt.Sprintf("%dmo", max(1, days/30))
}
