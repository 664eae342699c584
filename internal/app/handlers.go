package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skiffsh/skiff/internal/shell"
)

// updateNormal handles keys while the command line has focus.
func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if slot, ok := slotKey(msg); ok {
		m.jumpToSlot(slot)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.executeLine()

	case key.Matches(msg, m.keys.Interrupt):
		if len(m.input) == 0 {
			return m, tea.Quit
		}
		m.appendScrollback(m.echoLine("^C"))
		m.resetInput()
		m.histIdx = -1

	case key.Matches(msg, m.keys.EndOfFile):
		if len(m.input) == 0 {
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.ClearPane):
		m.scrollback = nil

	case key.Matches(msg, m.keys.KillLine), key.Matches(msg, m.keys.Cancel):
		m.resetInput()
		m.histIdx = -1

	case key.Matches(msg, m.keys.Backspace):
		m.deleteBeforeCursor()

	case key.Matches(msg, m.keys.Delete):
		m.deleteAtCursor()

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.input) {
			m.cursor++
		}

	case key.Matches(msg, m.keys.LineHome):
		m.cursor = 0

	case key.Matches(msg, m.keys.LineEnd):
		m.cursor = len(m.input)

	case key.Matches(msg, m.keys.Up):
		m.historyPrev()

	case key.Matches(msg, m.keys.Down):
		m.historyNext()

	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			m.insertRunes(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.insertRunes([]rune{' '})
		}
	}
	return m, nil
}

// executeLine echoes the prompt line, records history, and dispatches
// the classified intent. Shell commands run synchronously: the session
// blocks until they finish, like a plain shell.
func (m *Model) executeLine() (tea.Model, tea.Cmd) {
	line := string(m.input)
	m.appendScrollback(m.echoLine(""))
	m.pushHistory(strings.TrimSpace(line))
	m.resetInput()
	m.histIdx = -1

	intent := shell.Classify(line)
	switch intent.Kind {
	case shell.IntentEmpty:

	case shell.IntentChangeDir:
		m.changeDir(intent.Arg)

	case shell.IntentOpenNavigator:
		m.browser.Open(m.cwd)
		m.mode = modeNavigating

	case shell.IntentClear:
		m.scrollback = nil

	case shell.IntentExit:
		return m, tea.Quit

	case shell.IntentSaveBookmark:
		m.marks.Add(m.cwd)
		m.appendScrollback("Shortcut saved: " + shell.AbbreviateHome(m.cwd))

	case shell.IntentOpenBookmarks:
		if m.marks.IsEmpty() {
			m.appendScrollback("No shortcuts saved yet. Use `skiff save` first.")
			break
		}
		m.pickerIdx = 0
		m.mode = modePicking

	case shell.IntentShell:
		m.runShell(intent.Arg)
	}
	return m, nil
}

// updateNavigating handles keys while the directory navigator is open.
func (m *Model) updateNavigating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Interrupt):
		m.mode = modeNormal

	case key.Matches(msg, m.keys.Up):
		m.browser.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.browser.MoveDown()
		m.browser.AdjustScroll(m.navigatorListHeight())

	case key.Matches(msg, m.keys.Right):
		m.browser.EnterSelected()

	case key.Matches(msg, m.keys.Left):
		m.browser.GoUp()

	case key.Matches(msg, m.keys.Confirm):
		if path, ok := m.browser.SelectedPath(); ok {
			m.appendScrollback("cd " + shell.AbbreviateHome(path))
			m.setCwd(path)
		}
		m.mode = modeNormal
	}
	return m, nil
}

// updatePicking handles keys while the bookmark picker has focus.
func (m *Model) updatePicking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if n, ok := digitKey(msg); ok {
		m.jumpToSlot(n)
		m.mode = modeNormal
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Interrupt):
		m.mode = modeNormal

	case key.Matches(msg, m.keys.Up):
		if m.pickerIdx > 0 {
			m.pickerIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.pickerIdx < m.pickerCount()-1 {
			m.pickerIdx++
		}

	case key.Matches(msg, m.keys.Confirm):
		if b, ok := m.marks.Slot(m.pickerIdx + 1); ok {
			m.adoptBookmark(b)
		}
		m.mode = modeNormal
	}
	return m, nil
}

// slotKey recognizes the modifier+digit jump chords (ctrl+1..9 and
// alt+1..9, terminals differ in which one they deliver).
func slotKey(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	var digit byte
	switch {
	case len(s) == 6 && strings.HasPrefix(s, "ctrl+"):
		digit = s[5]
	case len(s) == 5 && strings.HasPrefix(s, "alt+"):
		digit = s[4]
	default:
		return 0, false
	}
	if digit < '1' || digit > '9' {
		return 0, false
	}
	return int(digit - '0'), true
}

// digitKey recognizes a bare 1..9 keypress.
func digitKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}
