package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiffsh/skiff/internal/config"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.BookmarkFile = filepath.Join(t.TempDir(), "bookmarks.json")
	m, err := New(cfg, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(m.Close)
	m.width, m.height = 80, 24
	return m
}

func typeString(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, kt tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: kt})
	return cmd
}

func run(m *Model, line string) tea.Cmd {
	typeString(m, line)
	return press(m, tea.KeyEnter)
}

func lastLine(t *testing.T, m *Model) string {
	t.Helper()
	require.NotEmpty(t, m.scrollback)
	return m.scrollback[len(m.scrollback)-1]
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypingAndLineEditing(t *testing.T) {
	m := newTestModel(t)

	typeString(m, "echo hi")
	assert.Equal(t, "echo hi", string(m.input))
	assert.Equal(t, 7, m.cursor)

	press(m, tea.KeyLeft)
	press(m, tea.KeyBackspace)
	assert.Equal(t, "echo i", string(m.input))
	assert.Equal(t, 5, m.cursor)

	press(m, tea.KeyCtrlA)
	assert.Equal(t, 0, m.cursor)
	press(m, tea.KeyDelete)
	assert.Equal(t, "cho i", string(m.input))

	press(m, tea.KeyCtrlE)
	assert.Equal(t, 5, m.cursor)

	press(m, tea.KeyCtrlU)
	assert.Empty(t, m.input)
	assert.Equal(t, 0, m.cursor)
}

func TestMultiByteInput(t *testing.T) {
	m := newTestModel(t)

	typeString(m, "echo 世界")
	assert.Equal(t, "echo 世界", string(m.input))
	// Cursor moves by runes, not bytes.
	assert.Equal(t, 7, m.cursor)
	press(m, tea.KeyBackspace)
	assert.Equal(t, "echo 世", string(m.input))
}

func TestHistoryNavigation(t *testing.T) {
	m := newTestModel(t)

	run(m, ": a")
	run(m, ": b")
	run(m, ": c")

	press(m, tea.KeyUp)
	assert.Equal(t, ": c", string(m.input))
	press(m, tea.KeyUp)
	assert.Equal(t, ": b", string(m.input))
	press(m, tea.KeyUp)
	assert.Equal(t, ": a", string(m.input))
	// Already at the oldest entry; Up stays put.
	press(m, tea.KeyUp)
	assert.Equal(t, ": a", string(m.input))

	press(m, tea.KeyDown)
	assert.Equal(t, ": b", string(m.input))
	press(m, tea.KeyDown)
	assert.Equal(t, ": c", string(m.input))
	// Walking past the newest entry restores an empty line.
	press(m, tea.KeyDown)
	assert.Empty(t, m.input)
}

func TestHistorySkipsBlanksAndDuplicates(t *testing.T) {
	m := newTestModel(t)

	run(m, ": a")
	run(m, "")
	run(m, ": a")
	assert.Equal(t, []string{": a"}, m.history)
}

func TestEnterRunsShellCommand(t *testing.T) {
	m := newTestModel(t)

	run(m, "echo hello")
	assert.Contains(t, m.scrollback, "hello")
	// The executed line is echoed with its prompt.
	assert.Contains(t, m.scrollback[0], "echo hello")
	assert.Empty(t, m.input)
}

func TestShellFailureShowsStderr(t *testing.T) {
	m := newTestModel(t)

	run(m, "echo oops >&2; exit 3")
	assert.Contains(t, m.scrollback, "oops")
}

func TestCdChangesDirectory(t *testing.T) {
	m := newTestModel(t)
	sub := filepath.Join(m.cwd, "sub")
	require.NoError(t, os.Mkdir(sub, 0o750))

	run(m, "cd sub")
	resolved, err := filepath.EvalSymlinks(sub)
	require.NoError(t, err)
	assert.Equal(t, resolved, m.cwd)
}

func TestCdMissingDirectoryReportsError(t *testing.T) {
	m := newTestModel(t)
	before := m.cwd

	run(m, "cd nope")
	assert.Equal(t, before, m.cwd)
	assert.Contains(t, lastLine(t, m), "no such directory")
}

func TestClearEmptiesScrollback(t *testing.T) {
	m := newTestModel(t)

	run(m, "echo hello")
	require.NotEmpty(t, m.scrollback)
	run(m, "clear")
	assert.Empty(t, m.scrollback)

	run(m, "echo again")
	press(m, tea.KeyCtrlL)
	assert.Empty(t, m.scrollback)
}

func TestExitQuits(t *testing.T) {
	m := newTestModel(t)
	assert.True(t, isQuit(run(m, "exit")))
}

func TestCtrlCAbortsLineThenQuits(t *testing.T) {
	m := newTestModel(t)

	typeString(m, "echo doomed")
	cmd := press(m, tea.KeyCtrlC)
	assert.False(t, isQuit(cmd))
	assert.Empty(t, m.input)
	assert.Contains(t, lastLine(t, m), "^C")

	assert.True(t, isQuit(press(m, tea.KeyCtrlC)))
}

func TestCtrlDQuitsOnlyOnEmptyLine(t *testing.T) {
	m := newTestModel(t)

	typeString(m, "x")
	assert.False(t, isQuit(press(m, tea.KeyCtrlD)))
	press(m, tea.KeyCtrlU)
	assert.True(t, isQuit(press(m, tea.KeyCtrlD)))
}

func TestNavigatorEndToEnd(t *testing.T) {
	m := newTestModel(t)
	inner := filepath.Join(m.cwd, "sub", "inner")
	require.NoError(t, os.MkdirAll(inner, 0o750))

	run(m, "cd -list")
	require.Equal(t, modeNavigating, m.mode)

	// Listing is [.., sub]; move onto sub and descend.
	press(m, tea.KeyDown)
	press(m, tea.KeyRight)
	assert.Equal(t, filepath.Join(m.cwd, "sub"), m.browser.Current())

	// Listing is [.., inner]; select inner and commit.
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, inner, m.cwd)
	assert.Contains(t, lastLine(t, m), "cd ")
}

func TestNavigatorEscCancels(t *testing.T) {
	m := newTestModel(t)
	before := m.cwd

	run(m, "cd -list")
	press(m, tea.KeyDown)
	press(m, tea.KeyEsc)
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, before, m.cwd)
}

func TestNavigatorEnterOnParentCommitsParent(t *testing.T) {
	m := newTestModel(t)

	run(m, "cd -list")
	// The parent entry is selected by default; Enter adopts it.
	parent := filepath.Dir(m.cwd)
	press(m, tea.KeyEnter)
	assert.Equal(t, parent, m.cwd)
}

func TestSaveBookmark(t *testing.T) {
	m := newTestModel(t)

	run(m, "skiff save")
	assert.Contains(t, lastLine(t, m), "Shortcut saved:")
	assert.Equal(t, 1, m.marks.Len())

	// Saving the same directory again refreshes, never duplicates.
	run(m, "skiff save")
	assert.Equal(t, 1, m.marks.Len())
}

func TestBookmarkPickerConfirm(t *testing.T) {
	m := newTestModel(t)
	other := filepath.Join(m.cwd, "other")
	require.NoError(t, os.Mkdir(other, 0o750))
	m.marks.Add(other)

	run(m, "skiff goto")
	require.Equal(t, modePicking, m.mode)

	press(m, tea.KeyEnter)
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, other, m.cwd)
}

func TestBookmarkPickerOnEmptySet(t *testing.T) {
	m := newTestModel(t)

	run(m, "skiff goto")
	assert.Equal(t, modeNormal, m.mode)
	assert.Contains(t, lastLine(t, m), "No shortcuts saved")
}

func TestBookmarkPickerMissingDirectory(t *testing.T) {
	m := newTestModel(t)
	gone := filepath.Join(m.cwd, "gone")
	require.NoError(t, os.Mkdir(gone, 0o750))
	m.marks.Add(gone)
	require.NoError(t, os.Remove(gone))
	before := m.cwd

	run(m, "skiff goto")
	press(m, tea.KeyEnter)
	assert.Equal(t, before, m.cwd)
	assert.Contains(t, lastLine(t, m), "no longer exists")
}

func TestSlotJumpChord(t *testing.T) {
	m := newTestModel(t)
	other := filepath.Join(m.cwd, "other")
	require.NoError(t, os.Mkdir(other, 0o750))
	m.marks.Add(other)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true})
	assert.Equal(t, other, m.cwd)
}

func TestTickSchedulesFetch(t *testing.T) {
	m := newTestModel(t)
	m.lastFetch = time.Now().Add(-time.Hour)

	before := m.lastFetch
	m.Update(tickMsg(time.Now()))
	assert.True(t, m.lastFetch.After(before))
}

func TestViewRendersPanes(t *testing.T) {
	m := newTestModel(t)
	typeString(m, "echo hi")

	view := m.View()
	assert.Contains(t, view, "Shortcuts")
	assert.Contains(t, view, "echo")

	run(m, "cd -list")
	view = m.View()
	assert.Contains(t, view, "..")
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	m.width, m.height = 10, 2
	assert.Empty(t, m.View())
}
