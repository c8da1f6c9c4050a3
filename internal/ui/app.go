package ui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vloureiro/garagem/internal/checklist"
	"github.com/vloureiro/garagem/internal/engine"
	"github.com/vloureiro/garagem/internal/notify"
	"github.com/vloureiro/garagem/internal/remote"
)

const (
	defaultPollTick = 250 * time.Millisecond
	toastLifetime   = 4 * time.Second
)

// mode is the current input mode of the screen.
type mode int

const (
	modeList   mode = iota // navigating items
	modeCost               // editing the selected item's estimated cost
	modeAppend             // filling the new-item form
	modeActual             // entering the actual cost before finalizing
)

// Options configure the UI.
type Options struct {
	Context  context.Context
	Engine   *engine.Engine
	Bus      *notify.Bus
	PollTick time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx      context.Context
	eng      *engine.Engine
	bus      *notify.Bus
	events   <-chan notify.Event
	pollTick time.Duration

	theme  Theme
	styles Styles
	width  int
	height int
	ready  bool

	view engine.View

	selectedRow int
	mode        mode
	showHelp    bool

	costInput   textinput.Model
	nameInput   textinput.Model
	appendFocus int // 0 = name, 1 = cost (reused costInput)
	spin        spinner.Model

	toast    notify.Event
	toastSeq int
	hasToast bool
}

// New creates the root model. Engine and Bus are required.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = defaultPollTick
	}

	_, events := opts.Bus.Subscribe(16)

	cost := textinput.New()
	cost.Placeholder = "0,00"
	cost.CharLimit = 12
	cost.Width = 12

	name := textinput.New()
	name.Placeholder = "nome do item"
	name.CharLimit = 60
	name.Width = 30

	theme := DefaultTheme
	spin := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))),
	)

	return Model{
		ctx:       ctx,
		eng:       opts.Engine,
		bus:       opts.Bus,
		events:    events,
		pollTick:  pollTick,
		theme:     theme,
		styles:    theme.Styles(),
		view:      opts.Engine.Snapshot(),
		costInput: cost,
		nameInput: name,
		spin:      spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
		waitEventCmd(m.events),
		m.spin.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.view = m.eng.Snapshot()
		m.clampSelection()
		return m, tickCmd(m.pollTick)

	case toastMsg:
		m.toast = notify.Event(msg)
		m.hasToast = true
		m.toastSeq++
		return m, tea.Batch(
			waitEventCmd(m.events),
			expireToastCmd(m.toastSeq),
		)

	case toastExpiredMsg:
		if int(msg) == m.toastSeq {
			m.hasToast = false
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Carregando..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey routes keyboard input by mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeCost:
		return m.handleCostKey(msg)
	case modeAppend:
		return m.handleAppendKey(msg)
	case modeActual:
		return m.handleActualKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.items()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "j", "down":
		if m.selectedRow < len(items)-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		if len(items) > 0 {
			m.selectedRow = len(items) - 1
		}

	case "1":
		m.setStatus(checklist.StatusPending)
	case "2":
		m.setStatus(checklist.StatusCompleted)
	case "3":
		m.setStatus(checklist.StatusNeedsReplacement)
	case "4":
		m.setStatus(checklist.StatusIgnored)

	case "e", "enter":
		if item := m.selectedItem(); item != nil {
			m.mode = modeCost
			m.costInput.SetValue(formatCostInput(item.EstimatedCost))
			m.costInput.CursorEnd()
			m.costInput.Focus()
			return m, textinput.Blink
		}

	case "a":
		m.mode = modeAppend
		m.appendFocus = 0
		m.nameInput.SetValue("")
		m.costInput.SetValue("")
		m.nameInput.Focus()
		m.costInput.Blur()
		return m, textinput.Blink

	case "f":
		if c := m.view.Checklist; c != nil {
			if c.Finalized {
				v := false
				_ = m.eng.ApplyTransition(&v, nil, nil)
			} else {
				m.mode = modeActual
				m.costInput.SetValue(formatCostInput(c.EstimatedTotal))
				m.costInput.CursorEnd()
				m.costInput.Focus()
				return m, textinput.Blink
			}
		}

	case "p":
		if c := m.view.Checklist; c != nil {
			v := !c.Paid
			_ = m.eng.ApplyTransition(nil, &v, nil)
		}
	}

	return m, nil
}

func (m Model) handleCostKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.selectedItem()

	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.costInput.Blur()
		if item != nil {
			m.eng.CancelItemCost(item.ID)
		}
		return m, nil

	case "enter":
		m.mode = modeList
		m.costInput.Blur()
		if item == nil {
			return m, nil
		}
		if cost, ok := parseCost(m.costInput.Value()); ok {
			if err := m.eng.SetItemCost(item.ID, cost); err == nil {
				m.eng.FlushItemCost(item.ID)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.costInput, cmd = m.costInput.Update(msg)
	return m, cmd
}

func (m Model) handleAppendKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.nameInput.Blur()
		m.costInput.Blur()
		return m, nil

	case "tab", "shift+tab":
		if m.appendFocus == 0 {
			m.appendFocus = 1
			m.nameInput.Blur()
			m.costInput.Focus()
		} else {
			m.appendFocus = 0
			m.costInput.Blur()
			m.nameInput.Focus()
		}
		return m, textinput.Blink

	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		cost, _ := parseCost(m.costInput.Value())
		m.mode = modeList
		m.nameInput.Blur()
		m.costInput.Blur()
		_ = m.eng.AppendItem(remote.ItemDraft{
			Name:          name,
			Status:        checklist.StatusPending,
			EstimatedCost: cost,
		})
		return m, nil
	}

	var cmd tea.Cmd
	if m.appendFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.costInput, cmd = m.costInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleActualKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.costInput.Blur()
		return m, nil

	case "enter":
		m.mode = modeList
		m.costInput.Blur()
		if cost, ok := parseCost(m.costInput.Value()); ok {
			v := true
			_ = m.eng.ApplyTransition(&v, nil, &cost)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.costInput, cmd = m.costInput.Update(msg)
	return m, cmd
}

// setStatus applies a status key to the selected item.
func (m *Model) setStatus(status checklist.Status) {
	if item := m.selectedItem(); item != nil {
		_ = m.eng.SetItemStatus(item.ID, status)
	}
}

func (m *Model) items() []checklist.Item {
	if m.view.Checklist == nil {
		return nil
	}
	return m.view.Checklist.Items
}

func (m *Model) selectedItem() *checklist.Item {
	items := m.items()
	if m.selectedRow < 0 || m.selectedRow >= len(items) {
		return nil
	}
	return &items[m.selectedRow]
}

func (m *Model) clampSelection() {
	if n := len(m.items()); m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// parseCost reads a currency amount typed by the user. Accepts a comma as
// the decimal separator.
func parseCost(raw string) (float64, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatCostInput renders a cost for editing, comma-decimal, no grouping.
func formatCostInput(v float64) string {
	if v == 0 {
		return ""
	}
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}

// Messages

type tickMsg time.Time

type toastMsg notify.Event

type toastExpiredMsg int

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitEventCmd(events <-chan notify.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return toastMsg(ev)
	}
}

func expireToastCmd(seq int) tea.Cmd {
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return toastExpiredMsg(seq)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
