package theme

import (
	"os"
	"time"

	devicons "github.com/epilande/go-devicons"
)

type iconFileInfo struct {
	name  string
	isDir bool
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode {
	if i.isDir {
		return os.ModeDir | 0o755
	}
	return 0
}

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return i.isDir }

func (i iconFileInfo) Sys() any { return nil }

// FolderIcon is the marker used when devicons has no better match.
const FolderIcon = ""

// IconFor returns the Nerd Font icon for a directory entry name.
func IconFor(name string, isDir bool) string {
	if name == "" || name == ".." {
		return FolderIcon
	}
	style := devicons.IconForInfo(iconFileInfo{name: name, isDir: isDir})
	if style.Icon == "" {
		return FolderIcon
	}
	return style.Icon
}
