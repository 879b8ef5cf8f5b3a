// Package tui provides the BubbleTea-based theme picker.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/themectl/internal/palette"
	"github.com/jmylchreest/themectl/internal/theme"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeList Mode = iota
	ModePreview
	ModeHelp
)

// Model is the theme picker model.
type Model struct {
	registry *theme.Registry

	mode Mode

	list     list.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	swatchWidth      int
	clipboardCommand string

	width  int
	height int
	ready  bool

	statusMsg string
	statusErr bool

	// Reload notifications from a theme.Watcher
	changes <-chan struct{}
}

// themeItem wraps a theme for the list component.
type themeItem struct {
	theme   *theme.Theme
	current bool
}

func (i themeItem) Title() string {
	if i.current {
		return i.theme.Name() + " ●"
	}
	return i.theme.Name()
}

func (i themeItem) Description() string {
	if i.theme.IsDefault() {
		return "built-in"
	}
	return i.theme.Path()
}

func (i themeItem) FilterValue() string {
	return i.theme.Name()
}

// themeDelegate highlights the selected theme.
type themeDelegate struct {
	list.DefaultDelegate
}

func newThemeDelegate() themeDelegate {
	return themeDelegate{DefaultDelegate: list.NewDefaultDelegate()}
}

// Render draws the current theme's title in the accent color.
func (d themeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(themeItem)
	if !ok || !ti.current {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	titleStyle := d.Styles.NormalTitle.Foreground(lipgloss.Color("10"))
	descStyle := d.Styles.NormalDesc
	if index == m.Index() {
		titleStyle = d.Styles.SelectedTitle.Foreground(lipgloss.Color("10"))
		descStyle = d.Styles.SelectedDesc
	}

	fmt.Fprint(w, titleStyle.Render(ti.Title()))
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, descStyle.Render(ti.Description()))
}

// New creates a new picker model.
func New(r *theme.Registry, opts RunOptions) Model {
	l := list.New(nil, newThemeDelegate(), 0, 0)
	l.Title = "Color Themes"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	swatch := opts.SwatchWidth
	if swatch <= 0 {
		swatch = palette.DefaultSwatchWidth
	}

	m := Model{
		registry:         r,
		mode:             ModeList,
		list:             l,
		help:             help.New(),
		keys:             DefaultKeyMap(),
		swatchWidth:      swatch,
		clipboardCommand: opts.ClipboardCommand,
		changes:          opts.changes,
	}
	m.list.SetItems(m.buildListItems())
	m.selectCurrent()
	return m
}

// Init initializes the picker.
func (m Model) Init() tea.Cmd {
	return m.watchForChanges
}

// watchForChanges waits for the next reload from the watcher.
func (m Model) watchForChanges() tea.Msg {
	if m.changes == nil {
		return nil
	}
	if _, ok := <-m.changes; !ok {
		return nil
	}
	return reloadedMsg{}
}

type reloadedMsg struct{}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type copyResultMsg struct {
	err error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.list.SetSize(msg.Width, msg.Height-2)
		m.viewport = viewport.New(msg.Width, msg.Height-4)
		m.viewport.YPosition = 2
		m.help.Width = msg.Width
		return m, nil

	case reloadedMsg:
		m.list.SetItems(m.buildListItems())
		return m, tea.Batch(m.watchForChanges, m.setStatus("Themes reloaded", false))

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, m.setStatus("Copy failed: "+msg.err.Error(), true)
		}
		return m, m.setStatus("Copied path to clipboard", false)
	}

	var cmd tea.Cmd
	switch m.mode {
	case ModeList:
		m.list, cmd = m.list.Update(msg)
	case ModePreview:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Let the list own the keyboard while its filter input is active.
	if m.mode == ModeList && m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		if m.mode == ModeHelp {
			m.mode = ModeList
		} else {
			m.mode = ModeHelp
		}
		return m, nil
	}

	switch m.mode {
	case ModeList:
		return m.handleListKey(msg)
	case ModePreview:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Preview) {
			m.mode = ModeList
			return m, nil
		}
		if key.Matches(msg, m.keys.Select) {
			return m.selectHighlighted()
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case ModeHelp:
		if key.Matches(msg, m.keys.Back) {
			m.mode = ModeList
		}
		return m, nil
	}

	return m, nil
}

// handleListKey handles keys in list mode.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		return m.selectHighlighted()

	case key.Matches(msg, m.keys.Preview):
		item, ok := m.list.SelectedItem().(themeItem)
		if !ok {
			return m, nil
		}
		content, err := m.renderPreview(item.theme)
		if err != nil {
			return m, m.setStatus("Preview failed: "+err.Error(), true)
		}
		m.viewport.SetContent(content)
		m.viewport.GotoTop()
		m.mode = ModePreview
		return m, nil

	case key.Matches(msg, m.keys.CopyPath):
		item, ok := m.list.SelectedItem().(themeItem)
		if !ok || item.theme.Path() == "" {
			return m, m.setStatus("Built-in theme has no file", true)
		}
		path, command := item.theme.Path(), m.clipboardCommand
		return m, func() tea.Msg {
			return copyResultMsg{err: copyText(path, command)}
		}

	case key.Matches(msg, m.keys.Refresh):
		if err := m.registry.Load(); err != nil {
			return m, m.setStatus("Rescan failed: "+err.Error(), true)
		}
		m.list.SetItems(m.buildListItems())
		return m, m.setStatus(fmt.Sprintf("%d themes", len(m.list.Items())), false)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selectHighlighted makes the highlighted theme the current one.
func (m Model) selectHighlighted() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(themeItem)
	if !ok {
		return m, nil
	}
	if err := m.registry.SetCurrent(item.theme); err != nil {
		return m, m.setStatus("Select failed: "+err.Error(), true)
	}
	m.mode = ModeList
	m.list.SetItems(m.buildListItems())
	return m, m.setStatus("Using "+item.theme.Name(), false)
}

// setStatus returns a command that shows a transient status line.
func (m Model) setStatus(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// buildListItems converts the registry into list items.
func (m Model) buildListItems() []list.Item {
	current := m.registry.Current()
	themes := m.registry.Themes()
	items := make([]list.Item, 0, len(themes))
	for _, t := range themes {
		items = append(items, themeItem{theme: t, current: t == current})
	}
	return items
}

// selectCurrent moves the cursor to the current theme.
func (m *Model) selectCurrent() {
	for i, item := range m.list.Items() {
		if ti, ok := item.(themeItem); ok && ti.current {
			m.list.Select(i)
			return
		}
	}
}

// renderPreview decodes the theme's colors and renders them as swatches.
func (m Model) renderPreview(t *theme.Theme) (string, error) {
	data, err := theme.Source(t)
	if err != nil {
		return "", err
	}
	p, err := palette.Decode(t.Name(), data)
	if err != nil {
		return "", err
	}
	return palette.Render(p, palette.RenderOptions{SwatchWidth: m.swatchWidth}), nil
}

// View renders the picker.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case ModeList:
		return m.list.View() + "\n" + m.footer()
	case ModePreview:
		header := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render("Preview")
		return header + "\n" + m.viewport.View() + "\n" + m.footer()
	case ModeHelp:
		title := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1).
			Render("Keyboard Shortcuts")
		return title + "\n" + m.help.FullHelpView(m.keys.FullHelp())
	default:
		return ""
	}
}

// footer shows the status message, or the short help when there is none.
func (m Model) footer() string {
	if m.statusMsg == "" {
		return m.help.ShortHelpView(m.keys.ShortHelp())
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	if m.statusErr {
		style = style.Foreground(lipgloss.Color("9"))
	}
	return style.Render(strings.TrimSpace(m.statusMsg))
}

// RunOptions configures the picker.
type RunOptions struct {
	SwatchWidth      int           // Width of preview swatches
	ClipboardCommand string        // Empty = auto-detect
	Watch            bool          // Reload the list when the themes directory changes
	Debounce         time.Duration // Quiet period for Watch

	changes <-chan struct{}
}

// Run starts the picker on r and blocks until the user quits.
func Run(r *theme.Registry, opts RunOptions) error {
	var watcher *theme.Watcher
	if opts.Watch {
		changes := make(chan struct{}, 1)
		watcher = theme.NewWatcher(r, nil)
		watcher.SetDebounce(opts.Debounce)
		watcher.SetChangeCallback(func(*theme.Registry) {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
		if err := watcher.Start(context.Background()); err != nil {
			return fmt.Errorf("watch themes: %w", err)
		}
		opts.changes = changes
	}

	p := tea.NewProgram(New(r, opts), tea.WithAltScreen())
	_, err := p.Run()

	if watcher != nil {
		watcher.Stop()
	}
	return err
}
