package shell

import (
	"strings"
	"unicode"
)

// IntentKind enumerates what an input line asks the session to do.
type IntentKind int

const (
	// IntentEmpty is a blank or whitespace-only line.
	IntentEmpty IntentKind = iota
	// IntentChangeDir changes the working directory. An empty Arg means
	// the home directory.
	IntentChangeDir
	// IntentOpenNavigator opens the directory navigator (`cd -list`).
	IntentOpenNavigator
	// IntentClear clears the scrollback.
	IntentClear
	// IntentExit quits the session.
	IntentExit
	// IntentSaveBookmark bookmarks the working directory (`skiff save`).
	IntentSaveBookmark
	// IntentOpenBookmarks opens the bookmark picker (`skiff goto`).
	IntentOpenBookmarks
	// IntentShell hands the line to the system shell.
	IntentShell
)

// Intent is the classified form of one input line. Arg carries the cd
// target for IntentChangeDir and the full trimmed line for IntentShell.
type Intent struct {
	Kind IntentKind
	Arg  string
}

// Classify maps a raw input line to exactly one Intent.
func Classify(line string) Intent {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Intent{Kind: IntentEmpty}
	}

	head, rest := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		head, rest = trimmed[:i], strings.TrimSpace(trimmed[i:])
	}

	switch head {
	case "cd":
		switch rest {
		case "-list", "--list":
			return Intent{Kind: IntentOpenNavigator}
		default:
			return Intent{Kind: IntentChangeDir, Arg: rest}
		}
	case "clear":
		return Intent{Kind: IntentClear}
	case "exit", "quit":
		return Intent{Kind: IntentExit}
	case "skiff":
		switch rest {
		case "save":
			return Intent{Kind: IntentSaveBookmark}
		case "goto":
			return Intent{Kind: IntentOpenBookmarks}
		}
	}
	return Intent{Kind: IntentShell, Arg: trimmed}
}
