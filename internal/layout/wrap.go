// Package layout wraps logical lines into terminal rows and maps the
// edit cursor to its on-screen cell. One wrapping pass feeds both, so
// the drawn text and the cursor can never disagree.
package layout

import "github.com/mattn/go-runewidth"

// RuneWidth returns the number of terminal columns r occupies: 2 for
// East-Asian-wide runes, 0 for combining marks and other zero-width
// runes, 1 otherwise.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// WrapLine splits one logical line into visual rows whose display
// width never exceeds width. An empty line still occupies one row; a
// rune that does not fit in the remaining columns moves to the next
// row whole.
func WrapLine(line string, width int) []string {
	rows, _, _ := wrapWithCursor(line, width, -1)
	return rows
}

// wrapWithCursor wraps line and, when cursorIdx >= 0, reports the
// (row, col) cell of the cursor sitting before rune cursorIdx. A
// cursor at the end of a row that is exactly full lands on the next
// row at column 0, matching where the next typed rune would appear.
func wrapWithCursor(line string, width, cursorIdx int) (rows []string, curRow, curCol int) {
	if width <= 0 {
		return []string{line}, 0, 0
	}

	var row []rune
	used := 0
	for i, r := range []rune(line) {
		w := RuneWidth(r)
		if used+w > width && len(row) > 0 {
			rows = append(rows, string(row))
			row = row[:0]
			used = 0
		}
		if i == cursorIdx {
			curRow, curCol = len(rows), used
		}
		row = append(row, r)
		used += w
	}
	rows = append(rows, string(row))

	// Cursor past the last rune.
	if cursorIdx >= 0 && cursorIdx >= len([]rune(line)) {
		curRow, curCol = len(rows)-1, used
		if used >= width {
			curRow, curCol = len(rows), 0
		}
	}
	return rows, curRow, curCol
}

// Cursor is a viewport cell position.
type Cursor struct {
	Col int
	Row int
}

// Frame is the laid-out terminal pane: the visible rows and where the
// edit cursor landed. Visible is false when scrolling pushed the
// cursor off the viewport.
type Frame struct {
	Rows    []string
	Cursor  Cursor
	Visible bool
}

// Compose lays out the scrollback plus the live input line for a
// width×height viewport. inputLine is the full prompt+input render and
// cursorIdx the rune index of the edit cursor within it (prompt runes
// included). The newest rows win: when content overflows, rows are
// clipped from the top.
func Compose(scrollback []string, inputLine string, cursorIdx, width, height int) Frame {
	if width <= 0 || height <= 0 {
		return Frame{}
	}

	var rows []string
	for _, line := range scrollback {
		rows = append(rows, WrapLine(line, width)...)
	}
	inputStart := len(rows)
	inputRows, curRow, curCol := wrapWithCursor(inputLine, width, cursorIdx)
	rows = append(rows, inputRows...)

	scroll := 0
	if len(rows) > height {
		scroll = len(rows) - height
	}

	cursorRow := inputStart + curRow - scroll
	return Frame{
		Rows:    rows[scroll:],
		Cursor:  Cursor{Col: curCol, Row: cursorRow},
		Visible: cursorRow >= 0 && cursorRow < height,
	}
}
