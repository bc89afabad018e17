// Package model contains the Bubble Tea models of the typeahead CLI.
package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/typeahead/internal/application/usecase"
	"github.com/bnema/typeahead/internal/cli/styles"
	"github.com/bnema/typeahead/internal/domain/autocomplete"
	"github.com/bnema/typeahead/internal/domain/entity"
	"github.com/bnema/typeahead/internal/logging"
	"github.com/bnema/typeahead/internal/ui/document"
	"github.com/bnema/typeahead/internal/ui/typeahead"
)

const (
	defaultWidth      = 80
	defaultHeight     = 24
	defaultMaxRows    = 8
	inputBoxHeight    = 3
	chromeHeight      = inputBoxHeight + 2 + 3 // list borders, status, button, help
	doneButtonLabel   = "Done"
	doneNodeID        = "done"
	bodyNodeID        = "body"
	optionsBorderRows = 1
)

type focusTarget int

const (
	focusNone focusTarget = iota
	focusInput
	focusDone
)

// PickParams holds everything the picker needs.
type PickParams struct {
	Theme      *styles.Theme
	Widget     typeahead.Config
	Candidates []entity.Candidate
	Suggest    *usecase.SuggestCandidatesUseCase
	Resolver   autocomplete.HintResolver[string]
	// MaxVisibleOptions is the height of the option list in rows.
	MaxVisibleOptions int
	// Query pre-fills the input.
	Query string
}

// PickResult is what the user picked, if anything.
type PickResult struct {
	Value  string
	Picked bool
}

// ThemeChangedMsg swaps the theme of a running picker.
type ThemeChangedMsg struct {
	Theme *styles.Theme
}

type flushMsg struct{}

// PickModel is the Bubble Tea host of a typeahead widget.
type PickModel struct {
	ctx    context.Context
	theme  *styles.Theme
	keys   styles.PickKeyMap
	help   help.Model
	input  textinput.Model
	widget *typeahead.Typeahead[string]

	doc  *document.Document
	body *document.Node
	done *document.Node

	candidates []entity.Candidate
	suggest    *usecase.SuggestCandidatesUseCase

	focus    focusTarget
	scroll   int
	hovering bool
	maxRows  int
	width    int
	height   int
	initCmd  tea.Cmd

	result PickResult
	quit   bool
}

// NewPickModel creates the picker and activates its widget.
func NewPickModel(ctx context.Context, p PickParams) (*PickModel, error) {
	m := &PickModel{
		ctx:        logging.WithComponent(ctx, "pick"),
		theme:      p.Theme,
		keys:       styles.DefaultPickKeyMap(),
		help:       styles.NewStyledHelp(p.Theme),
		input:      styles.NewPickInput(p.Theme, p.Widget.Placeholder),
		doc:        document.New(),
		candidates: p.Candidates,
		suggest:    p.Suggest,
		maxRows:    p.MaxVisibleOptions,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	if m.maxRows <= 0 {
		m.maxRows = defaultMaxRows
	}
	if m.suggest == nil {
		m.suggest = usecase.NewSuggestCandidatesUseCase(usecase.SuggestOptions{})
	}

	widget, err := typeahead.New(m.ctx, typeahead.Params[string]{
		Config:     p.Widget,
		Resolver:   p.Resolver,
		Callbacks:  m.callbacks(),
		InputValue: p.Query,
		Options:    m.rank(p.Query),
	})
	if err != nil {
		return nil, fmt.Errorf("create typeahead: %w", err)
	}
	m.widget = widget
	m.input.SetValue(p.Query)
	m.input.CursorEnd()

	m.body = m.doc.Window().Append(document.NewNode(bodyNodeID))
	m.body.Append(widget.Nodes().Root)
	m.done = m.body.Append(document.NewNode(doneNodeID))
	widget.Activate(m.doc)

	if p.Widget.AutoFocus {
		m.initCmd = m.focusInput()
	}
	return m, nil
}

func (m *PickModel) callbacks() typeahead.Callbacks[string] {
	log := logging.FromContext(m.ctx)
	return typeahead.Callbacks[string]{
		OnChange: func(value string) {
			log.Debug().Str("value", value).Int("options", len(m.widget.State().Options)).Msg("input changed")
		},
		OnComplete: func(_ typeahead.KeyEvent, completion string) {
			m.widget.SetOptions(m.rank(completion))
			m.setInput(completion)
			m.clampScroll()
		},
		OnOptionClick: func(_ typeahead.PointerEvent, option string, _ int) {
			m.setInput(option)
		},
		OnOptionChange: func(_ typeahead.KeyEvent, active typeahead.Active[string], index int) {
			m.setInput(activeValue(active))
			log.Debug().Int("index", index).Str("active_descendant", m.ActiveDescendant()).Msg("option changed")
		},
		OnKeyDown: func(ev typeahead.KeyEvent, active typeahead.Active[string], _ int) {
			if ev.Key == typeahead.KeyEnter {
				m.submit(activeValue(active))
			}
		},
		OnDropdownOpen: func() {
			log.Debug().Msg("dropdown opened")
		},
		OnDropdownClose: func() {
			m.hovering = false
			log.Debug().Msg("dropdown closed")
		},
		GetMessageForOption: func(active typeahead.Active[string]) string {
			if !active.IsOption() {
				return ""
			}
			return fmt.Sprintf("%s, %d of %d", active.Option, active.Index+1, len(m.widget.State().Options))
		},
	}
}

func activeValue(active typeahead.Active[string]) string {
	if active.IsOption() {
		return active.Option
	}
	return active.Input
}

// Init implements tea.Model.
func (m *PickModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initCmd)
}

// Update implements tea.Model.
func (m *PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 1)
		m.clampScroll()

	case ThemeChangedMsg:
		if msg.Theme != nil {
			m.theme = msg.Theme
			m.help = styles.NewStyledHelp(msg.Theme)
			m.help.Width = m.width
			styles.RestyleInput(&m.input, msg.Theme)
		}

	case flushMsg:
		m.widget.Flush(listLayout{m: m})

	case tea.MouseMsg:
		m.flushPending()
		cmds = append(cmds, m.handleMouse(msg))

	case tea.KeyMsg:
		m.flushPending()
		cmds = append(cmds, m.handleKey(msg))
	}

	if m.quit {
		m.widget.Deactivate()
		return m, tea.Quit
	}
	if m.widget.Pending() > 0 {
		cmds = append(cmds, flush)
	}
	return m, tea.Batch(cmds...)
}

func flush() tea.Msg { return flushMsg{} }

// flushPending finishes the previous event when its flushMsg has not arrived yet.
func (m *PickModel) flushPending() {
	if m.widget.Pending() > 0 {
		m.widget.Flush(listLayout{m: m})
	}
}

func (m *PickModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		m.cancel()
		return nil
	}
	switch m.focus {
	case focusDone:
		return m.handleDoneKey(msg)
	case focusNone:
		cmd := m.focusInput()
		return tea.Batch(cmd, m.handleInputKey(msg))
	default:
		return m.handleInputKey(msg)
	}
}

func (m *PickModel) handleDoneKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		return m.focusInput()
	case tea.KeyEnter, tea.KeySpace:
		m.submit(m.input.Value())
	case tea.KeyEsc:
		m.cancel()
	}
	return nil
}

func (m *PickModel) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.SwitchFocus) {
		m.focusDone()
		return nil
	}

	ev := TranslateKey(msg, m.cursorAtEnd())
	st := m.widget.State()
	wasOpen := st.DropdownVisible || st.HintVisible

	out := m.widget.KeyDown(ev)
	if m.quit {
		return nil
	}
	if ev.Key == typeahead.KeyEscape && !wasOpen {
		m.cancel()
		return nil
	}

	var cmds []tea.Cmd
	if !out.PreventDefault {
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)

		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.widget.KeyPress(ev)
		}
		if after := m.input.Value(); after != before {
			m.widget.SetOptions(m.rank(after))
			m.scroll = 0
			m.widget.InputChanged(after)
		}
	}
	if out.FocusInput {
		cmds = append(cmds, m.focusInput())
	}
	return tea.Batch(cmds...)
}

// TranslateKey maps a terminal key to the widget's key model.
func TranslateKey(msg tea.KeyMsg, cursorAtEnd bool) typeahead.KeyEvent {
	ev := typeahead.KeyEvent{Name: msg.String(), CursorAtEnd: cursorAtEnd}
	switch msg.Type {
	case tea.KeyEnd:
		ev.Key = typeahead.KeyEnd
	case tea.KeyShiftEnd:
		ev.Key, ev.Shift = typeahead.KeyEnd, true
	case tea.KeyTab:
		ev.Key = typeahead.KeyTab
	case tea.KeyShiftTab:
		ev.Key, ev.Shift = typeahead.KeyTab, true
	case tea.KeyLeft:
		ev.Key = typeahead.KeyLeft
	case tea.KeyShiftLeft:
		ev.Key, ev.Shift = typeahead.KeyLeft, true
	case tea.KeyRight:
		ev.Key = typeahead.KeyRight
	case tea.KeyShiftRight:
		ev.Key, ev.Shift = typeahead.KeyRight, true
	case tea.KeyEnter:
		ev.Key = typeahead.KeyEnter
	case tea.KeyEsc:
		ev.Key = typeahead.KeyEscape
	case tea.KeyUp:
		ev.Key = typeahead.KeyUp
	case tea.KeyShiftUp:
		ev.Key, ev.Shift = typeahead.KeyUp, true
	case tea.KeyDown:
		ev.Key = typeahead.KeyDown
	case tea.KeyShiftDown:
		ev.Key, ev.Shift = typeahead.KeyDown, true
	}
	return ev
}

func (m *PickModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	index, onList := m.optionAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		switch {
		case onList:
			m.hovering = true
			m.widget.HoverOption(index)
		case m.hovering:
			m.hovering = false
			m.widget.LeaveOptions()
		}
		return nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
	default:
		return nil
	}

	target := m.nodeAt(msg.X, msg.Y, index, onList)
	m.doc.Dispatch(document.Event{Type: document.PointerDown, Target: target})

	switch {
	case onList:
		out := m.widget.ClickOption(index, typeahead.PointerEvent{X: msg.X, Y: msg.Y})
		if out.FocusInput {
			return m.focusInput()
		}
	case target == m.widget.Nodes().Input:
		cmd := m.focusInput()
		m.widget.InputClicked()
		return cmd
	case target == m.done:
		m.focusDone()
	}
	return nil
}

func (m *PickModel) nodeAt(x, y, index int, onList bool) *document.Node {
	switch {
	case onList:
		return m.widget.Nodes().Option(index)
	case y < inputBoxHeight:
		return m.widget.Nodes().Input
	case y == m.buttonRow() && x < lipgloss.Width(m.theme.RenderButton(doneButtonLabel, false)):
		return m.done
	default:
		return m.body
	}
}

// optionAt maps screen coordinates to an option index.
func (m *PickModel) optionAt(_, y int) (int, bool) {
	rows := m.visibleRows()
	if rows == 0 {
		return -1, false
	}
	first := inputBoxHeight + optionsBorderRows
	if y < first || y >= first+rows {
		return -1, false
	}
	index := m.scroll + y - first
	if index >= len(m.widget.State().Options) {
		return -1, false
	}
	return index, true
}

func (m *PickModel) buttonRow() int {
	row := inputBoxHeight
	if rows := m.visibleRows(); rows > 0 {
		row += rows + 2*optionsBorderRows
	}
	return row + 1 // status line
}

func (m *PickModel) focusInput() tea.Cmd {
	if m.focus == focusInput {
		return nil
	}
	m.focus = focusInput
	m.doc.Dispatch(document.Event{Type: document.FocusChange, Target: m.widget.Nodes().Input})
	m.widget.FocusGained()
	return m.input.Focus()
}

func (m *PickModel) focusDone() {
	if m.focus == focusDone {
		return
	}
	if m.focus == focusInput {
		m.input.Blur()
		m.widget.Blurred()
	}
	m.focus = focusDone
	m.doc.Dispatch(document.Event{Type: document.FocusChange, Target: m.done})
}

func (m *PickModel) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.widget.SetInputValue(value)
}

func (m *PickModel) submit(value string) {
	if value == "" {
		return
	}
	logging.FromContext(m.ctx).Debug().Str("value", value).Msg("picked")
	m.result = PickResult{Value: value, Picked: true}
	m.quit = true
}

func (m *PickModel) cancel() {
	logging.FromContext(m.ctx).Debug().Msg("pick cancelled")
	m.result = PickResult{}
	m.quit = true
}

func (m *PickModel) rank(query string) []string {
	return usecase.Values(m.suggest.Suggest(query, m.candidates))
}

func (m *PickModel) cursorAtEnd() bool {
	return m.input.Position() >= len([]rune(m.input.Value()))
}

// visibleRows is the number of option rows currently drawn.
func (m *PickModel) visibleRows() int {
	st := m.widget.State()
	if !st.DropdownVisible {
		return 0
	}
	rows := min(len(st.Options), m.maxRows)
	if limit := m.height - chromeHeight; limit > 0 {
		rows = min(rows, limit)
	}
	return max(rows, 0)
}

func (m *PickModel) clampScroll() {
	st := m.widget.State()
	n := len(st.Options)
	rows := min(n, m.maxRows)
	if st.DropdownVisible {
		rows = m.visibleRows()
	}
	m.scroll = max(min(m.scroll, n-rows), 0)
}

// View implements tea.Model.
func (m *PickModel) View() string {
	t := m.theme
	st := m.widget.State()
	inner := max(m.width-2, 1)

	line := m.input.View()
	if st.HintVisible && m.cursorAtEnd() {
		line += t.RenderHint(autocomplete.HintSuffix(st.InputValue, st.Hint))
	}
	if st.Direction == autocomplete.RTL {
		line = styles.AlignRight(line, inner-2)
	}
	sections := []string{t.InputBox(line, m.focus == focusInput, inner)}

	if rows := m.visibleRows(); rows > 0 {
		list := make([]string, 0, rows)
		for i := m.scroll; i < m.scroll+rows && i < len(st.Options); i++ {
			list = append(list, t.RenderOption(styles.OptionRow{
				Text:   st.Options[i],
				Active: i == st.SelectedIndex,
				Match:  st.UserInputValue,
			}, inner))
		}
		sections = append(sections, t.OptionsBox.Render(lipgloss.JoinVertical(lipgloss.Left, list...)))
	}

	status := m.widget.Status()
	sections = append(sections,
		t.RenderStatus(status.ActiveOption, status.IncomingOptions),
		t.RenderButton(doneButtonLabel, m.focus == focusDone),
		m.help.View(m.keys),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Result returns what the user picked once the program has exited.
func (m *PickModel) Result() PickResult {
	return m.result
}

// State exposes the widget state, mainly for tests.
func (m *PickModel) State() typeahead.State[string] {
	return m.widget.State()
}

// ActiveDescendant returns the element ID of the active option, or "" at -1.
func (m *PickModel) ActiveDescendant() string {
	st := m.widget.State()
	if st.SelectedIndex < 0 {
		return ""
	}
	return m.widget.Identity().OptionID(st.SelectedIndex)
}

// listLayout measures the option list as View draws it: one row per option.
type listLayout struct {
	m *PickModel
}

func (l listLayout) OptionBounds(index int) (int, int, bool) {
	if index < 0 || index >= len(l.m.widget.State().Options) {
		return 0, 0, false
	}
	return index, 1, true
}

func (l listLayout) Viewport() (int, int) {
	return l.m.scroll, l.m.visibleRows()
}

func (l listLayout) ScrollTo(offset int) {
	l.m.scroll = offset
}

var _ tea.Model = (*PickModel)(nil)
