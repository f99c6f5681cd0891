// Package page is a scrolling document with several dropdowns embedded in
// it. It is the host the pick demo runs and exercises the shared Window:
// every dropdown tracks the same page scroll and terminal size.
package page

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/marcus/pick/internal/catalog"
	"github.com/marcus/pick/internal/config"
	"github.com/marcus/pick/internal/loader"
	"github.com/marcus/pick/pkg/inputselect"
)

const (
	headerHeight = 1
	indent       = 2
	wheelLines   = 3
)

// Data is what the page lists. Fruits and Countries are available up
// front; People is fetched once the program starts.
type Data struct {
	Fruits    []catalog.Item
	Countries []catalog.Item
	People    loader.FetchFunc[catalog.Item]
}

// Options configures the page.
type Options struct {
	Settings config.Settings
	Latency  time.Duration
	Logger   *slog.Logger
}

// field binds a dropdown to the catalog list it shows.
type field struct {
	list     string
	dropdown *inputselect.Model[catalog.Item]
}

// Model is the demo page.
type Model struct {
	keys     KeyMap
	window   *inputselect.Window
	viewport viewport.Model
	fields   []field
	slots    []int // content line of each field's top
	focus    int   // -1 when no field has focus
	people   loader.FetchFunc[catalog.Item]
	latency  time.Duration
	logger   *slog.Logger

	rendered      []string
	renderedWidth int

	picks    map[string]catalog.Item
	lastPick string

	width, height int
	ready         bool
}

func parseItem(it catalog.Item) inputselect.Parsed {
	return inputselect.Parsed{Label: it.Label, Value: it.ID}
}

// New builds the page. The returned model owns its dropdowns; call Close
// when the program exits.
func New(data Data, opts Options) (*Model, error) {
	s := opts.Settings.WithDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Model{
		keys:    DefaultKeyMap(),
		window:  inputselect.NewWindow(),
		focus:   -1,
		people:  data.People,
		latency: opts.Latency,
		logger:  logger,
		picks:   make(map[string]catalog.Item),
	}
	m.viewport = viewport.New(0, 0)

	var banana *catalog.Item
	for i := range data.Fruits {
		if data.Fruits[i].ID == "banana" {
			banana = &data.Fruits[i]
			break
		}
	}

	specs := []struct {
		list    string
		label   string
		items   []catalog.Item
		def     *catalog.Item
		loading bool
		filter  bool
	}{
		{list: catalog.ListFruits, label: "Fruit", items: data.Fruits, def: banana},
		{list: catalog.ListPeople, label: "Person", loading: data.People != nil},
		{list: catalog.ListCountries, label: "Country", items: data.Countries, filter: true},
	}

	for _, sp := range specs {
		list, label := sp.list, sp.label
		dd, err := inputselect.New(inputselect.Config[catalog.Item]{
			ID:           list,
			Label:        label,
			DefaultValue: sp.def,
			Items:        sp.items,
			IsLoading:    sp.loading,
			LoadingLabel: s.LoadingLabel,
			ParseItem:    parseItem,
			OnChange: func(it catalog.Item) {
				m.picks[list] = it
				m.lastPick = fmt.Sprintf("%s: %s", label, it.Label)
			},
			Placeholder: s.Placeholder,
			EmptyLabel:  s.EmptyLabel,
			Width:       s.Width,
			MaxVisible:  s.MaxVisible,
			Filter:      sp.filter || s.Filter,
			Window:      m.window,
			Logger:      logger,
		})
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("create %s dropdown: %w", list, err)
		}
		m.fields = append(m.fields, field{list: list, dropdown: dd})
	}
	m.slots = make([]int, len(m.fields))
	return m, nil
}

// Window returns the signal hub the dropdowns share.
func (m *Model) Window() *inputselect.Window { return m.window }

// Picks returns the last confirmed item per catalog list.
func (m *Model) Picks() map[string]catalog.Item { return m.picks }

// Dropdown returns the dropdown showing list, or nil.
func (m *Model) Dropdown(list string) *inputselect.Model[catalog.Item] {
	for _, f := range m.fields {
		if f.list == list {
			return f.dropdown
		}
	}
	return nil
}

// Close tears down every dropdown.
func (m *Model) Close() {
	for _, f := range m.fields {
		f.dropdown.Close()
	}
}

// Init starts the people fetch.
func (m *Model) Init() tea.Cmd {
	if m.people == nil {
		return nil
	}
	return loader.Fetch(catalog.ListPeople, m.latency, m.people)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.refresh()
		m.window.Update(msg)
		return m, nil

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case inputselect.ItemsMsg[catalog.Item], inputselect.LoadingMsg:
		for _, f := range m.fields {
			f.dropdown.Update(msg)
		}
	}

	m.refresh()
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	screen := strings.Join([]string{
		m.headerView(),
		m.viewport.View(),
		m.statusView(),
		m.helpView(),
	}, "\n")
	for _, f := range m.fields {
		screen = f.dropdown.Overlay(screen)
	}

	// An open panel near the bottom may extend past the terminal.
	lines := strings.Split(screen, "\n")
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) focused() *inputselect.Model[catalog.Item] {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return nil
	}
	return m.fields[m.focus].dropdown
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	dd := m.focused()
	if dd != nil {
		ddKeys := inputselect.DefaultKeyMap()
		if dd.IsOpen() || key.Matches(msg, ddKeys.Open, ddKeys.Down) {
			_, cmd := dd.Update(msg)
			return cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.QuitIdle):
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.step(1))
	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.step(-1))
	case key.Matches(msg, m.keys.Unfocus):
		m.setFocus(-1)
	case key.Matches(msg, m.keys.LineUp):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.LineDown):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.GotoTop):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.GotoBottom):
		m.viewport.GotoBottom()
	}
	return nil
}

// step returns the field index delta away from the focused one, wrapping
// around. With nothing focused it starts from the first or last field.
func (m *Model) step(delta int) int {
	n := len(m.fields)
	if m.focus < 0 {
		if delta < 0 {
			return n - 1
		}
		return 0
	}
	return ((m.focus+delta)%n + n) % n
}

// setFocus moves focus to field i; -1 clears it.
func (m *Model) setFocus(i int) {
	if dd := m.focused(); dd != nil {
		dd.Blur()
	}
	m.focus = -1
	if i < 0 || i >= len(m.fields) {
		return
	}
	m.focus = i
	m.fields[i].dropdown.Focus()
	m.scrollIntoView(i)
}

func (m *Model) scrollIntoView(i int) {
	top := m.slots[i]
	bottom := top + m.fields[i].dropdown.Height()
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	// An open panel under the pointer takes the event for itself.
	for _, f := range m.fields {
		if f.dropdown.Contains(msg.X, msg.Y) {
			f.dropdown.Update(msg)
			m.syncFocus()
			return
		}
	}

	if tea.MouseEvent(msg).IsWheel() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.viewport.ScrollUp(wheelLines)
		case tea.MouseButtonWheelDown:
			m.viewport.ScrollDown(wheelLines)
		}
		return
	}

	for _, f := range m.fields {
		f.dropdown.Update(msg)
	}
	m.syncFocus()
}

// syncFocus picks up focus changes the dropdowns made on click.
func (m *Model) syncFocus() {
	m.focus = -1
	for i, f := range m.fields {
		if f.dropdown.Focused() {
			m.focus = i
			return
		}
	}
}

// refresh re-renders the document and re-anchors every dropdown. Mount
// must run before the scroll signal so listeners read the new geometry.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.renderSections()

	status := m.statusView()
	vpHeight := max(m.height-headerHeight-lipgloss.Height(status)-1, 1)
	m.viewport.Width = m.width
	m.viewport.Height = vpHeight
	m.viewport.SetContent(m.content())
	m.viewport.SetYOffset(m.viewport.YOffset)

	for i, f := range m.fields {
		f.dropdown.Mount(indent, headerHeight+m.slots[i]-m.viewport.YOffset)
	}
	m.window.ScrollTo(m.viewport.YOffset)
}

// content lays out the rendered sections with the dropdown triggers in
// between and records where each trigger starts.
func (m *Model) content() string {
	var lines []string
	pad := strings.Repeat(" ", indent)
	for i, sec := range m.rendered {
		lines = append(lines, strings.Split(sec, "\n")...)
		if i >= len(m.fields) {
			continue
		}
		m.slots[i] = len(lines)
		for _, l := range strings.Split(m.fields[i].dropdown.TriggerView(), "\n") {
			lines = append(lines, pad+l)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderSections runs the markdown through glamour once per width.
func (m *Model) renderSections() {
	if m.rendered != nil && m.renderedWidth == m.width {
		return
	}
	m.renderedWidth = m.width

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(m.width-4, 20)),
	)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", "err", err)
	}

	m.rendered = make([]string, len(sections))
	for i, md := range sections {
		out := md
		if r != nil {
			if s, err := r.Render(md); err == nil {
				out = s
			} else {
				m.logger.Warn("render section", "section", i, "err", err)
			}
		}
		m.rendered[i] = strings.TrimRight(out, "\n")
	}
}

func (m *Model) headerView() string {
	return titleStyle.Render("pick") + mutedStyle.Render(" · dropdown demo")
}

func (m *Model) statusView() string {
	status := "Nothing picked yet."
	if m.lastPick != "" {
		status = "Picked " + m.lastPick
	}
	return cellbuf.Wrap(status, max(m.width, 1), " ")
}

func (m *Model) helpView() string {
	return mutedStyle.Render("tab field • enter open • j/k scroll • q quit")
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
