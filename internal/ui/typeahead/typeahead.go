// Package typeahead implements the interaction state machine of a single-line
// input with an inline completion hint and a selectable option list.
//
// The widget never draws anything. A host feeds it input, key, pointer and focus
// events, renders from State, and calls Flush with the new layout after each render
// so deferred work (scrolling the active row into view, OnOptionChange) observes
// up-to-date state. All methods must be called from the host's event loop.
package typeahead

import (
	"context"

	"github.com/bnema/typeahead/internal/domain/autocomplete"
	"github.com/bnema/typeahead/internal/logging"
	"github.com/bnema/typeahead/internal/ui/document"
)

// Params holds everything needed to create a Typeahead.
type Params[T any] struct {
	Config    Config
	Resolver  autocomplete.HintResolver[T]
	Direction autocomplete.DirectionDetector
	Callbacks Callbacks[T]

	InputValue string
	Options    []T
}

// State is a read-only snapshot for renderers.
type State[T any] struct {
	InputValue         string
	UserInputValue     string
	HasUserInput       bool
	PreviousInputValue string
	HasPreviousInput   bool
	Options            []T
	SelectedIndex      int
	HintVisible        bool
	DropdownVisible    bool
	// Hint is the resolver output while HintVisible, "" otherwise.
	Hint      string
	Direction autocomplete.Direction
}

// Typeahead is the interaction state machine.
type Typeahead[T any] struct {
	ctx       context.Context
	cfg       Config
	id        Identity
	cb        Callbacks[T]
	resolve   autocomplete.HintResolver[T]
	direction autocomplete.DirectionDetector
	nodes     *Nodes

	active   bool
	detector *outsideDetector

	inputValue      string
	userInput       *string
	previousInput   *string
	options         []T
	selectedIndex   int
	hintVisible     bool
	dropdownVisible bool

	// dropdownNotified is the visibility last reported through the callbacks.
	dropdownNotified bool
	pending          []func(Layout)
}

// New validates the configuration and creates an inactive widget.
func New[T any](ctx context.Context, p Params[T]) (*Typeahead[T], error) {
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}

	resolve := p.Resolver
	if resolve == nil {
		resolve = autocomplete.NoHint[T]
	}
	direction := p.Direction
	if direction == nil {
		direction = autocomplete.DetectDirection
	}

	id := NewIdentity(p.Config.Namespace)
	t := &Typeahead[T]{
		ctx:           logging.WithComponent(ctx, "typeahead"),
		cfg:           p.Config,
		id:            id,
		cb:            p.Callbacks.withDefaults(),
		resolve:       resolve,
		direction:     direction,
		nodes:         newNodes(id),
		inputValue:    p.InputValue,
		options:       p.Options,
		selectedIndex: -1,
	}
	t.nodes.syncOptions(id, len(p.Options))

	logging.FromContext(t.ctx).Debug().
		Str("namespace", id.Namespace).
		Bool("hover_select", p.Config.HoverSelect).
		Msg("typeahead created")
	return t, nil
}

// Activate starts a fresh interaction state and subscribes the outside-interaction
// listeners on target. Activating a live widget does nothing. A nil target skips
// outside detection.
func (t *Typeahead[T]) Activate(target document.EventTarget) {
	if t.active {
		return
	}
	t.resetState()
	t.active = true
	if target != nil {
		t.detector = newOutsideDetector(target, t.nodes.Root, t.CloseAll)
		t.detector.acquire()
	}
	logging.FromContext(t.ctx).Debug().Str("namespace", t.id.Namespace).Msg("typeahead activated")
}

// Deactivate releases the listeners and discards the interaction state.
func (t *Typeahead[T]) Deactivate() {
	if !t.active {
		return
	}
	if t.detector != nil {
		t.detector.release()
		t.detector = nil
	}
	t.resetState()
	t.active = false
	logging.FromContext(t.ctx).Debug().Str("namespace", t.id.Namespace).Msg("typeahead deactivated")
}

func (t *Typeahead[T]) resetState() {
	t.selectedIndex = -1
	t.hintVisible = false
	t.dropdownVisible = false
	t.dropdownNotified = false
	t.userInput = nil
	t.previousInput = nil
	t.pending = nil
}

// IsActive reports whether the widget is between Activate and Deactivate.
func (t *Typeahead[T]) IsActive() bool { return t.active }

// Config returns the validated configuration.
func (t *Typeahead[T]) Config() Config { return t.cfg }

// Identity returns the element IDs of this instance.
func (t *Typeahead[T]) Identity() Identity { return t.id }

// Nodes returns the widget's rendered subtree.
func (t *Typeahead[T]) Nodes() *Nodes { return t.nodes }

// State returns a snapshot of the current state.
func (t *Typeahead[T]) State() State[T] {
	s := State[T]{
		InputValue:      t.inputValue,
		Options:         t.options,
		SelectedIndex:   t.selectedIndex,
		HintVisible:     t.hintVisible,
		DropdownVisible: t.dropdownVisible,
		Direction:       t.direction(t.inputValue),
	}
	if t.userInput != nil {
		s.UserInputValue, s.HasUserInput = *t.userInput, true
	}
	if t.previousInput != nil {
		s.PreviousInputValue, s.HasPreviousInput = *t.previousInput, true
	}
	if t.hintVisible {
		s.Hint = t.resolve(t.inputValue, t.options)
	}
	return s
}

// SetOptions replaces the option list. A selection past the new end resets to -1.
func (t *Typeahead[T]) SetOptions(options []T) {
	t.drain()
	t.options = options
	t.selectedIndex = ClampIndex(t.selectedIndex, len(options))
	t.nodes.syncOptions(t.id, len(options))
	if t.hintVisible {
		t.updateHint()
	}
}

// SetInputValue overwrites the input value on behalf of the caller, e.g. after
// a completion. Unlike InputChanged it keeps the selection and fires nothing.
func (t *Typeahead[T]) SetInputValue(value string) {
	t.inputValue = value
	if t.hintVisible {
		t.updateHint()
	}
}

// InputChanged handles direct typing in the editable field.
func (t *Typeahead[T]) InputChanged(value string) {
	t.drain()
	t.inputValue = value
	t.updateHint()
	t.dropdownVisible = true
	t.selectedIndex = -1
	t.previousInput = nil
	t.cb.OnChange(value)
	t.userInput = &value
	t.settle()
}

// FocusGained handles the editable field receiving focus.
func (t *Typeahead[T]) FocusGained() {
	t.drain()
	t.updateHint()
	t.dropdownVisible = true
	t.cb.OnFocus()
	t.settle()
}

// Blurred handles the editable field losing focus.
func (t *Typeahead[T]) Blurred() {
	t.drain()
	t.cb.OnBlur()
}

// InputClicked handles a pointer click inside the editable field.
func (t *Typeahead[T]) InputClicked() {
	t.drain()
	t.updateHint()
	t.cb.OnInputClick()
}

// Navigate moves the selection one step in direction's sign with wraparound.
func (t *Typeahead[T]) Navigate(direction int) {
	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	default:
		return
	}
	t.selectedIndex = NextIndex(t.selectedIndex, direction, len(t.options))
}

// CommitHint accepts the visible hint. It does nothing while the hint is hidden.
func (t *Typeahead[T]) CommitHint(ev KeyEvent) {
	if !t.hintVisible {
		return
	}
	completion := t.resolve(t.inputValue, t.options)
	t.hintVisible = false
	t.previousInput = nil
	logging.FromContext(t.ctx).Debug().Str("completion", completion).Msg("hint committed")
	t.cb.OnComplete(ev, completion)
	t.settle()
}

// CloseAll hides the hint and the dropdown and ends the navigation session.
func (t *Typeahead[T]) CloseAll() {
	t.drain()
	t.closeAll()
	t.settle()
}

func (t *Typeahead[T]) closeAll() {
	t.hintVisible = false
	t.dropdownVisible = false
	t.previousInput = nil
}

// SelectOption activates option index as if it had been clicked.
func (t *Typeahead[T]) SelectOption(index int) Outcome {
	return t.ClickOption(index, PointerEvent{})
}

// ClickOption handles a pointer click on option row index.
func (t *Typeahead[T]) ClickOption(index int, ev PointerEvent) Outcome {
	t.drain()
	if index < 0 || index >= len(t.options) {
		return Outcome{}
	}
	t.closeAll()
	t.selectedIndex = index
	t.cb.OnOptionClick(ev, t.options[index], index)
	t.settle()
	return Outcome{FocusInput: true}
}

// HoverOption handles the pointer entering option row index.
func (t *Typeahead[T]) HoverOption(index int) {
	t.drain()
	if !t.cfg.HoverSelect || index < 0 || index >= len(t.options) {
		return
	}
	t.selectedIndex = index
}

// LeaveOptions handles the pointer leaving the option list.
func (t *Typeahead[T]) LeaveOptions() {
	t.drain()
	if !t.cfg.HoverSelect {
		return
	}
	t.selectedIndex = -1
}

// KeyDown runs the keyboard dispatch policy for a key press in the editable field.
func (t *Typeahead[T]) KeyDown(ev KeyEvent) Outcome {
	t.drain()

	var out Outcome
	navigated := false

	switch ev.Key {
	case KeyEnd, KeyTab:
		if t.hintVisible && !ev.Shift {
			out.PreventDefault = true
			t.CommitHint(ev)
		}

	case KeyLeft, KeyRight:
		if t.hintVisible && !ev.Shift && ev.CursorAtEnd && t.isForward(ev.Key) {
			out.PreventDefault = true
			t.CommitHint(ev)
		}

	case KeyEnter:
		out.FocusInput = true
		t.closeAll()

	case KeyEscape:
		t.closeAll()

	case KeyUp, KeyDown:
		if len(t.options) == 0 {
			break
		}
		out.PreventDefault = true
		wasOpen := t.dropdownVisible
		t.updateHint()
		t.dropdownVisible = true
		if wasOpen {
			navigated = true
			if ev.Key == KeyUp {
				t.Navigate(-1)
			} else {
				t.Navigate(1)
			}
			t.pending = append(t.pending, func(l Layout) { t.afterNavigate(ev, l) })
		}
	}

	if !navigated {
		t.cb.OnKeyDown(ev, t.activeData(), t.selectedIndex)
	}
	t.settle()
	return out
}

// KeyUp passes a key release through to the caller.
func (t *Typeahead[T]) KeyUp(ev KeyEvent) {
	t.drain()
	t.cb.OnKeyUp(ev)
}

// KeyPress passes a character key through to the caller.
func (t *Typeahead[T]) KeyPress(ev KeyEvent) {
	t.drain()
	t.cb.OnKeyPress(ev)
}

// Pending returns the number of deferred post-render tasks.
func (t *Typeahead[T]) Pending() int { return len(t.pending) }

// Flush runs the deferred post-render tasks against the layout that was just
// rendered. layout may be nil when the host cannot measure; scrolling is skipped.
// Every event method drains what is still pending before handling its event.
func (t *Typeahead[T]) Flush(layout Layout) {
	for len(t.pending) > 0 {
		task := t.pending[0]
		t.pending = t.pending[1:]
		task(layout)
	}
	t.settle()
}

// drain completes the previous event's deferred work before a new event is
// handled. Hosts that can measure should call Flush with a layout first; a task
// drained here skips scrolling.
func (t *Typeahead[T]) drain() {
	if len(t.pending) > 0 {
		t.Flush(nil)
	}
}

func (t *Typeahead[T]) afterNavigate(ev KeyEvent, layout Layout) {
	index := t.selectedIndex
	active := Active[T]{Index: -1}
	if t.previousInput != nil {
		active.Input = *t.previousInput
	}

	if index >= 0 && index < len(t.options) {
		if t.previousInput == nil {
			snapshot := t.inputValue
			t.previousInput = &snapshot
		}
		active = Active[T]{Index: index, Option: t.options[index]}
		if layout != nil {
			scrollIntoView(layout, index)
		}
	} else {
		index = -1
	}

	t.cb.OnOptionChange(ev, active, index)
}

func scrollIntoView(layout Layout, index int) {
	top, height, ok := layout.OptionBounds(index)
	if !ok {
		return
	}
	scrollTop, viewport := layout.Viewport()
	if offset, changed := ScrollOffset(top, height, scrollTop, viewport); changed {
		layout.ScrollTo(offset)
	}
}

// Status returns the accessibility announcements for the current state.
func (t *Typeahead[T]) Status() Status {
	msg := t.cb.GetMessageForOption(t.activeData())
	if msg == "" {
		msg = t.inputValue
	}
	return Status{
		ActiveOption:    msg,
		IncomingOptions: t.cb.GetMessageForIncomingOptions(len(t.options)),
	}
}

// Status holds the two screen reader announcements.
type Status struct {
	ActiveOption    string
	IncomingOptions string
}

func (t *Typeahead[T]) activeData() Active[T] {
	if t.selectedIndex < 0 || t.selectedIndex >= len(t.options) {
		return Active[T]{Index: -1, Input: t.inputValue}
	}
	return Active[T]{Index: t.selectedIndex, Option: t.options[t.selectedIndex]}
}

func (t *Typeahead[T]) updateHint() {
	t.hintVisible = autocomplete.IsHintVisible(t.inputValue, t.resolve(t.inputValue, t.options))
}

func (t *Typeahead[T]) isForward(k Key) bool {
	if t.direction(t.inputValue) == autocomplete.RTL {
		return k == KeyLeft
	}
	return k == KeyRight
}

// settle reports a dropdown visibility transition, at most once per call.
func (t *Typeahead[T]) settle() {
	if t.dropdownVisible == t.dropdownNotified {
		return
	}
	t.dropdownNotified = t.dropdownVisible
	if t.dropdownVisible {
		t.cb.OnDropdownOpen()
	} else {
		t.cb.OnDropdownClose()
	}
}
