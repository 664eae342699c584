// Package app wires the session model: the modal event loop that owns
// the working directory, the scrollback, the input line and the
// sidebar, and dispatches every key through exactly one mode handler.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skiffsh/skiff/internal/bookmarks"
	"github.com/skiffsh/skiff/internal/config"
	"github.com/skiffsh/skiff/internal/git"
	"github.com/skiffsh/skiff/internal/log"
	"github.com/skiffsh/skiff/internal/navigation"
	"github.com/skiffsh/skiff/internal/shell"
	"github.com/skiffsh/skiff/internal/theme"
)

// sessionMode selects which handler receives the next key.
type sessionMode int

const (
	modeNormal sessionMode = iota
	modeNavigating
	modePicking
)

const (
	tickInterval  = 250 * time.Millisecond
	maxScrollback = 2000
)

// Model is the bubbletea model for one skiff session.
type Model struct {
	cfg   *config.AppConfig
	theme *theme.Theme
	keys  keyMap

	runner  *shell.Runner
	poller  *git.Poller
	marks   *bookmarks.Manager
	watcher *bookmarks.Watcher // nil when file watching is unavailable
	browser *navigation.Browser

	cwd        string
	scrollback []string
	input      []rune
	cursor     int
	history    []string
	histIdx    int // -1 while editing a fresh line
	mode       sessionMode
	pickerIdx  int
	status     *git.Status
	lastFetch  time.Time

	width  int
	height int
}

// New builds a session rooted at workdir (the process working
// directory when empty).
func New(cfg *config.AppConfig, workdir string) (*Model, error) {
	if workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		workdir = wd
	}
	info, err := os.Stat(workdir)
	if err != nil {
		return nil, fmt.Errorf("workdir %s: %w", workdir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workdir %s: %w", workdir, shell.ErrNotADirectory)
	}

	storePath := cfg.BookmarkFile
	if storePath == "" {
		storePath, err = bookmarks.DefaultStorePath()
		if err != nil {
			return nil, fmt.Errorf("resolving bookmark store: %w", err)
		}
	}

	m := &Model{
		cfg:     cfg,
		theme:   theme.GetTheme(cfg.Theme),
		keys:    defaultKeyMap(),
		runner:  shell.NewRunner(cfg.Shell),
		poller:  git.NewPoller(),
		marks:   bookmarks.NewManager(bookmarks.NewFileStore(storePath)),
		browser: navigation.NewBrowser(navigation.DirLister{}),
		cwd:     workdir,
		histIdx: -1,
	}

	if watcher, err := bookmarks.NewWatcher(storePath); err != nil {
		log.Printf("app: bookmark watching disabled: %v", err)
	} else {
		m.watcher = watcher
	}

	m.poller.Update(m.cwd, false)
	m.lastFetch = time.Now()
	return m, nil
}

// Init starts the poll tick and the bookmark-file watch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.watchCmd())
}

// Update routes one message through the current mode.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.handleTick(time.Time(msg))
		return m, tickCmd()

	case bookmarksChangedMsg:
		m.marks.Reload()
		m.clampPicker()
		return m, m.watchCmd()

	case tea.KeyMsg:
		switch m.mode {
		case modeNavigating:
			return m.updateNavigating(msg)
		case modePicking:
			return m.updatePicking(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

// Close releases the background workers. Safe to call once the program
// has finished.
func (m *Model) Close() {
	m.poller.Stop()
	if m.watcher != nil {
		m.watcher.Close()
	}
}

// handleTick drains any finished status snapshot and schedules the next
// remote sync once the fetch interval has elapsed.
func (m *Model) handleTick(now time.Time) {
	if status, ok := m.poller.Drain(); ok {
		m.status = status
	}
	if now.Sub(m.lastFetch) >= m.fetchInterval() {
		m.poller.Update(m.cwd, true)
		m.lastFetch = now
	}
}

func (m *Model) fetchInterval() time.Duration {
	return time.Duration(m.cfg.FetchInterval) * time.Second
}

// setCwd commits a directory change and asks for a fresh status.
func (m *Model) setCwd(path string) {
	m.cwd = path
	m.status = nil
	m.poller.Update(path, false)
}

func (m *Model) changeDir(target string) {
	if target == "" {
		target = "~"
	}
	resolved, err := shell.ResolveDir(target, m.cwd)
	if err != nil {
		m.appendScrollback("cd: " + err.Error())
		return
	}
	m.setCwd(resolved)
}

func (m *Model) runShell(command string) {
	result, err := m.runner.Run(m.runContext(), command, m.cwd)
	if err != nil {
		m.appendScrollback("Error: " + err.Error())
		return
	}
	m.appendScrollback(result.Lines()...)
}

// adoptBookmark jumps to a saved directory, verifying it still exists.
func (m *Model) adoptBookmark(b bookmarks.Bookmark) {
	info, err := os.Stat(b.Path)
	if err != nil || !info.IsDir() {
		m.appendScrollback("Error: " + b.DisplayName() + " no longer exists")
		return
	}
	m.appendScrollback("cd " + b.DisplayName())
	m.setCwd(b.Path)
	m.marks.Touch(b.Path)
}

func (m *Model) jumpToSlot(n int) {
	if b, ok := m.marks.Slot(n); ok {
		m.adoptBookmark(b)
	}
}

func (m *Model) clampPicker() {
	if last := m.pickerCount() - 1; m.pickerIdx > last {
		m.pickerIdx = max(0, last)
	}
}

// pickerCount is the number of selectable sidebar rows.
func (m *Model) pickerCount() int {
	return min(m.marks.Len(), bookmarks.MaxSlots)
}

func (m *Model) appendScrollback(lines ...string) {
	m.scrollback = append(m.scrollback, lines...)
	if excess := len(m.scrollback) - maxScrollback; excess > 0 {
		m.scrollback = m.scrollback[excess:]
	}
}

func (m *Model) pushHistory(line string) {
	if line == "" {
		return
	}
	if n := len(m.history); n > 0 && m.history[n-1] == line {
		return
	}
	m.history = append(m.history, line)
}

func (m *Model) historyPrev() {
	if len(m.history) == 0 {
		return
	}
	if m.histIdx == -1 {
		m.histIdx = len(m.history) - 1
	} else if m.histIdx > 0 {
		m.histIdx--
	}
	m.loadHistory()
}

func (m *Model) historyNext() {
	if m.histIdx == -1 {
		return
	}
	if m.histIdx >= len(m.history)-1 {
		m.histIdx = -1
		m.resetInput()
		return
	}
	m.histIdx++
	m.loadHistory()
}

func (m *Model) loadHistory() {
	m.input = []rune(m.history[m.histIdx])
	m.cursor = len(m.input)
}

func (m *Model) insertRunes(rs []rune) {
	m.input = append(m.input[:m.cursor], append(append([]rune{}, rs...), m.input[m.cursor:]...)...)
	m.cursor += len(rs)
	m.histIdx = -1
}

func (m *Model) deleteBeforeCursor() {
	if m.cursor == 0 {
		return
	}
	m.input = append(m.input[:m.cursor-1], m.input[m.cursor:]...)
	m.cursor--
	m.histIdx = -1
}

func (m *Model) deleteAtCursor() {
	if m.cursor >= len(m.input) {
		return
	}
	m.input = append(m.input[:m.cursor], m.input[m.cursor+1:]...)
	m.histIdx = -1
}

func (m *Model) resetInput() {
	m.input = m.input[:0]
	m.cursor = 0
}

// promptText renders the prompt prefix: the abbreviated directory and
// the configured symbol.
func (m *Model) promptText() string {
	return shell.AbbreviateHome(m.cwd) + " " + m.cfg.PromptSymbol + " "
}

func (m *Model) echoLine(suffix string) string {
	return m.promptText() + string(m.input) + suffix
}

// runContext is the context shell commands run under. Commands block
// the loop until they finish, exactly like a plain shell.
func (m *Model) runContext() context.Context {
	return context.Background()
}
