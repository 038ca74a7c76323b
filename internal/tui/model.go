package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/feedterm/feedterm/internal/feed"
	"github.com/feedterm/feedterm/internal/tui/platform"
	tuitheme "github.com/feedterm/feedterm/internal/tui/theme"
	"github.com/feedterm/feedterm/internal/tui/view"
)

const (
	dateColumnWidth = 14
	statusLifetime  = 3 * time.Second
	minTitleWidth   = 10
)

// Options carries the process-level settings the model needs.
type Options struct {
	AppName    string
	Version    string
	FeedsPath  string
	NumSources int
	FPS        int
	ShowFPS    bool
}

type frameTickMsg time.Time

type debounceTimerMsg struct {
	seq int
}

type clearStatusMsg struct {
	seq int
}

type openURLResultMsg struct {
	err error
}

// Model is the whole program state. Update has a value receiver; every
// branch returns the modified copy.
type Model struct {
	opts    Options
	store   *feed.Store
	fetcher *feed.Fetcher
	th      tuitheme.Theme
	spin    spinner.Model

	width  int
	height int

	entries    []feed.Entry
	layout     listLayout
	selected   int
	selectedID uint64
	top        int

	detail detailState
	deb    debouncer

	status    string
	statusSeq int

	now time.Time

	fps          float64
	frameSamples int
	sampleStart  time.Time
}

func New(opts Options, store *feed.Store, fetcher *feed.Fetcher) Model {
	th := tuitheme.Default()
	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = th.AppVersion

	return Model{
		opts:    opts,
		store:   store,
		fetcher: fetcher,
		th:      th,
		spin:    sp,
		now:     time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.frameTickCmd(), m.spin.Tick)
}

// framePeriod is the render clock interval. FPS 0 means uncapped,
// which in a tick-driven loop degrades to a 1ms tick.
func (m Model) framePeriod() time.Duration {
	if m.opts.FPS <= 0 {
		return time.Millisecond
	}
	return time.Second / time.Duration(m.opts.FPS)
}

func (m Model) frameTickCmd() tea.Cmd {
	return tea.Tick(m.framePeriod(), func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func debounceTimerCmd(seq int) tea.Cmd {
	return tea.Tick(debounceWindow, func(time.Time) tea.Msg {
		return debounceTimerMsg{seq: seq}
	})
}

func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.clamp(m.detailBodyHeight())
		return m, nil

	case frameTickMsg:
		m = m.onFrame(time.Time(msg))
		return m, m.frameTickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case debounceTimerMsg:
		emit, armSeq := m.deb.TimerFired(msg.seq)
		if emit != 0 {
			m = m.applyScroll(emit)
		}
		if armSeq != 0 {
			return m, debounceTimerCmd(armSeq)
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case openURLResultMsg:
		if msg.err != nil {
			return m.setStatus("open failed: " + msg.err.Error())
		}
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)

	case tea.MouseMsg:
		return m.onMouse(msg)
	}
	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()

	case "esc", "backspace":
		if m.detail.active() {
			m.detail.close()
			return m, nil
		}
		return m.quit()

	case "enter", "l":
		if m.detail.active() || len(m.entries) == 0 {
			return m, nil
		}
		entry, ok := m.selectedEntry()
		if !ok {
			return m, nil
		}
		m.detail.open(entry, view.DetailWrapWidth(m.width))
		return m, nil

	case "down":
		return m.submitScroll(1)
	case "up":
		return m.submitScroll(-1)

	case "j":
		return m.applyScroll(1), nil
	case "k":
		return m.applyScroll(-1), nil

	case "g", "home":
		return m.applyScroll(math.MinInt), nil
	case "G", "end":
		return m.applyScroll(math.MaxInt), nil

	case "o":
		return m.openSelected()
	}
	return m, nil
}

func (m Model) onMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			return m.submitScroll(1)
		}
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			return m.submitScroll(-1)
		}
	}
	return m, nil
}

// quit drains the debouncer so a buffered scroll is applied rather
// than dropped, then stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if emit, ok := m.deb.Flush(); ok {
		m = m.applyScroll(emit)
	}
	return m, tea.Quit
}

// submitScroll routes a coalescable delta through the debouncer.
func (m Model) submitScroll(delta int) (tea.Model, tea.Cmd) {
	emit, armSeq := m.deb.Submit(delta)
	if emit != 0 {
		m = m.applyScroll(emit)
	}
	if armSeq != 0 {
		return m, debounceTimerCmd(armSeq)
	}
	return m, nil
}

// applyScroll moves whichever surface is focused: the expanded body
// when the detail view is open, the list selection otherwise.
func (m Model) applyScroll(delta int) Model {
	if m.detail.active() {
		m.detail.scroll(delta, m.detailBodyHeight())
		return m
	}
	if len(m.entries) == 0 {
		return m
	}
	m.selected = moveSelection(m.selected, delta, len(m.entries))
	m.selectedID = m.entries[m.selected].ID
	m.top = m.layout.adjustTop(m.top, m.selected, m.listHeight())
	return m
}

// onFrame is the fixed-rate clock: pull the latest store snapshot,
// re-anchor the selection by id, rebuild the layout for the current
// width, and update the frame-rate sample.
func (m Model) onFrame(now time.Time) Model {
	m.now = now

	m.frameSamples++
	if m.sampleStart.IsZero() {
		m.sampleStart = now
	} else if elapsed := now.Sub(m.sampleStart); elapsed >= time.Second {
		m.fps = float64(m.frameSamples) / elapsed.Seconds()
		m.frameSamples = 0
		m.sampleStart = now
	}

	m.entries = m.store.Snapshot()
	if len(m.entries) == 0 {
		m.selected = 0
		m.selectedID = 0
		m.top = 0
		m.layout = listLayout{}
		return m
	}

	if idx, ok := m.indexOf(m.selectedID); ok {
		m.selected = idx
	} else if m.selected >= len(m.entries) {
		m.selected = len(m.entries) - 1
	}
	m.selectedID = m.entries[m.selected].ID

	m.layout = layoutList(m.entries, m.titleWidth(), dateColumnWidth, m.now)
	m.top = m.layout.adjustTop(m.top, m.selected, m.listHeight())

	if m.detail.active() {
		if entry, ok := m.entryByID(m.detail.entryID); ok {
			m.detail.ensure(entry, view.DetailWrapWidth(m.width))
			m.detail.clamp(m.detailBodyHeight())
		} else {
			m.detail.close()
		}
	}
	return m
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	entry, ok := m.currentEntry()
	if !ok {
		return m.setStatus("nothing selected")
	}
	url, err := platform.ValidateEntryURL(entry.URL)
	if err != nil {
		return m.setStatus(err.Error())
	}
	return m, func() tea.Msg {
		return openURLResultMsg{err: platform.OpenURLInBrowser(url)}
	}
}

// currentEntry is the entry an action applies to: the expanded one
// when the detail view is open, the list selection otherwise.
func (m Model) currentEntry() (feed.Entry, bool) {
	if m.detail.active() {
		return m.entryByID(m.detail.entryID)
	}
	return m.selectedEntry()
}

func (m Model) selectedEntry() (feed.Entry, bool) {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return feed.Entry{}, false
	}
	return m.entries[m.selected], true
}

func (m Model) entryByID(id uint64) (feed.Entry, bool) {
	if idx, ok := m.indexOf(id); ok {
		return m.entries[idx], true
	}
	return feed.Entry{}, false
}

func (m Model) indexOf(id uint64) (int, bool) {
	if id == 0 {
		return 0, false
	}
	for i, entry := range m.entries {
		if entry.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusSeq++
	return m, clearStatusCmd(m.statusSeq)
}

func (m Model) titleWidth() int {
	w := m.width - len(">> ") - 2 - dateColumnWidth - 1
	if w < minTitleWidth {
		w = minTitleWidth
	}
	return w
}

// listHeight is the terminal rows available to the entry table: the
// header, its blank line, and the footer come off the top and bottom.
func (m Model) listHeight() int {
	return max(1, m.height-3)
}

// detailBodyHeight approximates the body rows inside the detail frame
// after the border and header lines.
func (m Model) detailBodyHeight() int {
	return max(1, m.listHeight()-7)
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := view.Header(m.opts.AppName, m.opts.Version, m.spin.View(), m.fetcher.Loading(), m.now, m.width, m.th)

	var body string
	switch {
	case m.opts.NumSources == 0:
		body = view.NoFeedsScreen(m.opts.FeedsPath, m.width, m.listHeight(), m.th)
	case m.detail.active():
		body = m.viewDetail()
	default:
		body = view.RenderListBody(view.ListInput{
			Rows:        m.layout.rows,
			Selected:    m.selected,
			Top:         m.top,
			Height:      m.listHeight(),
			TitleWidth:  m.titleWidth(),
			DateWidth:   dateColumnWidth,
			ScrollPos:   m.layout.scrollbarPosition(m.selected),
			TotalHeight: m.layout.total,
		}, m.th)
	}

	footer := view.Footer(m.detail.active(), m.opts.ShowFPS, m.fps, m.fetcher.FailedSources(), m.width, m.th)
	if m.status != "" {
		footer = m.th.Status.Render(m.status)
	}

	body = lipgloss.PlaceVertical(m.listHeight(), lipgloss.Top, body)
	return header + "\n\n" + body + "\n" + footer
}

func (m Model) viewDetail() string {
	entry, ok := m.entryByID(m.detail.entryID)
	if !ok {
		return ""
	}
	bodyHeight := m.detailBodyHeight()
	return view.RenderDetail(view.DetailInput{
		Entry:      entry,
		BodyLines:  m.detail.visible(bodyHeight),
		Offset:     m.detail.offset,
		TotalLines: len(m.detail.lines),
		Width:      m.width,
		BodyHeight: bodyHeight,
		Now:        m.now,
	}, m.th)
}
