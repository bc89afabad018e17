package typeahead_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/typeahead/internal/domain/autocomplete"
	"github.com/bnema/typeahead/internal/logging"
	"github.com/bnema/typeahead/internal/ui/document"
	"github.com/bnema/typeahead/internal/ui/typeahead"
)

// recorder captures callback invocations in order.
type recorder struct {
	calls         []string
	completions   []string
	changes       []string
	optionChanges []typeahead.Active[string]
	changeIndexes []int
	keyDowns      []typeahead.Active[string]
	clicked       []int
}

func (r *recorder) callbacks() typeahead.Callbacks[string] {
	return typeahead.Callbacks[string]{
		OnChange: func(v string) {
			r.calls = append(r.calls, "change")
			r.changes = append(r.changes, v)
		},
		OnFocus:      func() { r.calls = append(r.calls, "focus") },
		OnBlur:       func() { r.calls = append(r.calls, "blur") },
		OnInputClick: func() { r.calls = append(r.calls, "inputclick") },
		OnComplete: func(_ typeahead.KeyEvent, completion string) {
			r.calls = append(r.calls, "complete")
			r.completions = append(r.completions, completion)
		},
		OnOptionClick: func(_ typeahead.PointerEvent, _ string, index int) {
			r.calls = append(r.calls, "optionclick")
			r.clicked = append(r.clicked, index)
		},
		OnOptionChange: func(_ typeahead.KeyEvent, active typeahead.Active[string], index int) {
			r.calls = append(r.calls, "optionchange")
			r.optionChanges = append(r.optionChanges, active)
			r.changeIndexes = append(r.changeIndexes, index)
		},
		OnKeyDown: func(_ typeahead.KeyEvent, active typeahead.Active[string], _ int) {
			r.calls = append(r.calls, "keydown")
			r.keyDowns = append(r.keyDowns, active)
		},
		OnKeyUp:         func(typeahead.KeyEvent) { r.calls = append(r.calls, "keyup") },
		OnKeyPress:      func(typeahead.KeyEvent) { r.calls = append(r.calls, "keypress") },
		OnDropdownOpen:  func() { r.calls = append(r.calls, "open") },
		OnDropdownClose: func() { r.calls = append(r.calls, "close") },
	}
}

func (r *recorder) count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func newTestTypeahead(t *testing.T, options []string, rec *recorder) *typeahead.Typeahead[string] {
	t.Helper()
	cfg := typeahead.DefaultConfig()
	cfg.Namespace = "test"
	ta, err := typeahead.New(testCtx(), typeahead.Params[string]{
		Config:    cfg,
		Resolver:  autocomplete.StringResolver(false),
		Callbacks: rec.callbacks(),
		Options:   options,
	})
	require.NoError(t, err)
	ta.Activate(nil)
	return ta
}

// fakeLayout lays out rows of equal height in a fixed viewport.
type fakeLayout struct {
	rowHeight int
	rows      int
	scrollTop int
	height    int
	scrolls   []int
}

func (l *fakeLayout) OptionBounds(index int) (int, int, bool) {
	if index < 0 || index >= l.rows {
		return 0, 0, false
	}
	return index * l.rowHeight, l.rowHeight, true
}

func (l *fakeLayout) Viewport() (int, int) { return l.scrollTop, l.height }

func (l *fakeLayout) ScrollTo(offset int) {
	l.scrollTop = offset
	l.scrolls = append(l.scrolls, offset)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := typeahead.DefaultConfig()
	cfg.Namespace = "has space"
	cfg.InputName = "a b"

	_, err := typeahead.New[string](context.Background(), typeahead.Params[string]{Config: cfg})
	require.Error(t, err)
	assert.ErrorIs(t, err, typeahead.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "namespace")
	assert.Contains(t, err.Error(), "input name")
}

func TestNew_Defaults(t *testing.T) {
	ta, err := typeahead.New[string](context.Background(), typeahead.Params[string]{
		Config:     typeahead.DefaultConfig(),
		InputValue: "ap",
		Options:    []string{"apple"},
	})
	require.NoError(t, err)

	assert.False(t, ta.IsActive())
	assert.NotEmpty(t, ta.Identity().Namespace)

	// no resolver means no hint
	ta.Activate(nil)
	ta.FocusGained()
	st := ta.State()
	assert.False(t, st.HintVisible)
	assert.Equal(t, -1, st.SelectedIndex)
	assert.Equal(t, autocomplete.LTR, st.Direction)
}

func TestHintVisibility_RequiresSuffix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
		hint  string
	}{
		{name: "prefix extends", input: "ap", want: true, hint: "apple"},
		{name: "exact match has no suffix", input: "apple", want: false},
		{name: "empty input never shows hint", input: "", want: false},
		{name: "no match", input: "zz", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			ta := newTestTypeahead(t, []string{"apple", "apricot"}, rec)

			ta.InputChanged(tt.input)

			st := ta.State()
			assert.Equal(t, tt.want, st.HintVisible)
			assert.Equal(t, tt.hint, st.Hint)
		})
	}
}

func TestNavigate_StepsThroughOptionsThenInput(t *testing.T) {
	ta := newTestTypeahead(t, []string{"A", "B", "C"}, &recorder{})

	var seen []int
	for i := 0; i < 4; i++ {
		ta.Navigate(1)
		seen = append(seen, ta.State().SelectedIndex)
	}
	assert.Equal(t, []int{0, 1, 2, -1}, seen)
}

func TestNavigate_CyclesWithPeriodNPlusOne(t *testing.T) {
	for n := 1; n <= 5; n++ {
		options := make([]string, n)
		for i := range options {
			options[i] = string(rune('a' + i))
		}
		ta := newTestTypeahead(t, options, &recorder{})

		for i := 0; i < n+1; i++ {
			ta.Navigate(1)
		}
		assert.Equal(t, -1, ta.State().SelectedIndex, "n=%d", n)

		ta.Navigate(-1)
		assert.Equal(t, n-1, ta.State().SelectedIndex, "n=%d", n)
	}
}

func TestNavigate_ZeroDirectionIsNoop(t *testing.T) {
	ta := newTestTypeahead(t, []string{"a", "b"}, &recorder{})
	ta.Navigate(1)
	ta.Navigate(0)
	assert.Equal(t, 0, ta.State().SelectedIndex)
}

func TestInputChanged_ResetsSelection(t *testing.T) {
	rec := &recorder{}
	ta := newTestTypeahead(t, []string{"apple", "apricot"}, rec)

	ta.Navigate(1)
	ta.Navigate(1)
	require.Equal(t, 1, ta.State().SelectedIndex)

	ta.InputChanged("apr")

	st := ta.State()
	assert.Equal(t, -1, st.SelectedIndex)
	assert.True(t, st.DropdownVisible)
	assert.True(t, st.HasUserInput)
	assert.Equal(t, "apr", st.UserInputValue)
	assert.Equal(t, []string{"apr"}, rec.changes)
	assert.Equal(t, []string{"change", "open"}, rec.calls)
}

func TestCommitHint_Keys(t *testing.T) {
	t.Run("tab commits", func(t *testing.T) {
		rec := &recorder{}
		ta := newTestTypeahead(t, []string{"apple", "apricot"}, rec)
		ta.InputChanged("ap")
		require.True(t, ta.State().HintVisible)

		out := ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyTab})

		assert.True(t, out.PreventDefault)
		assert.Equal(t, []string{"apple"}, rec.completions)
		assert.False(t, ta.State().HintVisible)
	})

	t.Run("shift tab does nothing", func(t *testing.T) {
		rec := &recorder{}
		ta := newTestTypeahead(t, []string{"apple", "apricot"}, rec)
		ta.InputChanged("ap")

		out := ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyTab, Shift: true})

		assert.False(t, out.PreventDefault)
		assert.Empty(t, rec.completions)
		assert.True(t, ta.State().HintVisible)
		assert.Equal(t, 1, rec.count("keydown"))
	})

	t.Run("end commits", func(t *testing.T) {
		rec := &recorder{}
		ta := newTestTypeahead(t, []string{"apple"}, rec)
		ta.InputChanged("a")

		out := ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyEnd})

		assert.True(t, out.PreventDefault)
		assert.Equal(t, []string{"apple"}, rec.completions)
	})

	t.Run("hidden hint never commits", func(t *testing.T) {
		rec := &recorder{}
		ta := newTestTypeahead(t, []string{"apple"}, rec)
		ta.InputChanged("apple")

		ta.CommitHint(typeahead.KeyEvent{Key: typeahead.KeyTab})
		out := ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyTab})

		assert.False(t, out.PreventDefault)
		assert.Empty(t, rec.completions)
	})
}

func TestKeyDown_ForwardArrow(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		input   string
		key     typeahead.Key
		atEnd   bool
		commits bool
	}{
		{name: "ltr right at end", options: []string{"apple"}, input: "ap", key: typeahead.KeyRight, atEnd: true, commits: true},
		{name: "ltr right mid text", options: []string{"apple"}, input: "ap", key: typeahead.KeyRight, atEnd: false},
		{name: "ltr left", options: []string{"apple"}, input: "ap", key: typeahead.KeyLeft, atEnd: true},
		{name: "rtl left at end", options: []string{"שלום"}, input: "של", key: typeahead.KeyLeft, atEnd: true, commits: true},
		{name: "rtl right", options: []string{"שלום"}, input: "של", key: typeahead.KeyRight, atEnd: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			ta := newTestTypeahead(t, tt.options, rec)
			ta.InputChanged(tt.input)
			require.True(t, ta.State().HintVisible)

			out := ta.KeyDown(typeahead.KeyEvent{Key: tt.key, CursorAtEnd: tt.atEnd})

			assert.Equal(t, tt.commits, out.PreventDefault)
			if tt.commits {
				assert.Equal(t, []string{tt.options[0]}, rec.completions)
			} else {
				assert.Empty(t, rec.completions)
			}
		})
	}
}

func TestKeyDown_EnterAndEscapeClose(t *testing.T) {
	for _, key := range []typeahead.Key{typeahead.KeyEnter, typeahead.KeyEscape} {
		t.Run(key.String(), func(t *testing.T) {
			rec := &recorder{}
			ta := newTestTypeahead(t, []string{"apple"}, rec)
			ta.InputChanged("ap")

			out := ta.KeyDown(typeahead.KeyEvent{Key: key})

			st := ta.State()
			assert.False(t, st.HintVisible)
			assert.False(t, st.DropdownVisible)
			assert.Equal(t, key == typeahead.KeyEnter, out.FocusInput)
			assert.False(t, out.PreventDefault)
			assert.Equal(t, 1, rec.count("close"))
			assert.Equal(t, 1, rec.count("keydown"))
		})
	}
}

func TestKeyDown_UpDownOpensThenNavigates(t *testing.T) {
	rec := &recorder{}
	ta := newTestTypeahead(t, []string{"apple", "apricot"}, rec)
	ta.SetInputValue("ap")

	out := ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyDown})
	assert.True(t, out.PreventDefault)
	st := ta.State()
	assert.True(t, st.DropdownVisible)
	assert.True(t, st.HintVisible)
	assert.Equal(t, -1, st.SelectedIndex)
	assert.Equal(t, 0, ta.Pending())
	assert.Equal(t, []string{"keydown", "open"}, rec.calls)

	rec.calls = nil
	out = ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyDown})
	assert.True(t, out.PreventDefault)
	assert.Equal(t, 0, ta.State().SelectedIndex)
	assert.Equal(t, 1, ta.Pending())
	assert.Empty(t, rec.calls, "navigation suppresses OnKeyDown and defers OnOptionChange")

	ta.Flush(nil)
	assert.Equal(t, 0, ta.Pending())
	assert.Equal(t, []string{"optionchange"}, rec.calls)
	require.Len(t, rec.optionChanges, 1)
	assert.Equal(t, "apple", rec.optionChanges[0].Option)
	assert.Equal(t, 0, rec.changeIndexes[0])

	st = ta.State()
	assert.True(t, st.HasPreviousInput)
	assert.Equal(t, "ap", st.PreviousInputValue)
}

func TestKeyDown_UpDownWithoutOptionsFallsThrough(t *testing.T) {
	rec := &recorder{}
	ta := newTestTypeahead(t, nil, rec)

	out := ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyUp})

	assert.False(t, out.PreventDefault)
	assert.False(t, ta.State().DropdownVisible)
	assert.Equal(t, []string{"keydown"}, rec.calls)
	require.Len(t, rec.keyDowns, 1)
	assert.False(t, rec.keyDowns[0].IsOption())
}

func TestNavigation_RestoresPreviousInputAtMinusOne(t *testing.T) {
	rec := &recorder{}
	ta := newTestTypeahead(t, []string{"apple"}, rec)
	ta.InputChanged("ap")

	// host writes the active option into the input, as the picker does
	ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyDown})
	ta.Flush(nil)
	ta.SetInputValue("apple")

	ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyDown})
	ta.Flush(nil)

	require.Len(t, rec.optionChanges, 2)
	last := rec.optionChanges[1]
	assert.False(t, last.IsOption())
	assert.Equal(t, "ap", last.Input)
	assert.Equal(t, -1, rec.changeIndexes[1])
}

func TestFlush_ScrollsSelectedRowIntoView(t *testing.T) {
	options := []string{"a", "b", "c", "d", "e", "f"}
	ta := newTestTypeahead(t, options, &recorder{})
	ta.FocusGained()

	layout := &fakeLayout{rowHeight: 1, rows: len(options), height: 3}
	for i := 0; i < 4; i++ {
		ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyDown})
		ta.Flush(layout)
	}
	assert.Equal(t, 3, ta.State().SelectedIndex)
	assert.Equal(t, []int{1}, layout.scrolls)

	ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyUp})
	ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyUp})
	ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyUp})
	ta.Flush(layout)
	assert.Equal(t, 0, ta.State().SelectedIndex)
	assert.Equal(t, []int{1, 0}, layout.scrolls)
}

func TestKeyDown_DrainsPreviousNavigation(t *testing.T) {
	rec := &recorder{}
	ta := newTestTypeahead(t, []string{"alpha", "alps", "beta"}, rec)
	ta.InputChanged("a")

	ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyDown})
	ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyDown})
	assert.Equal(t, 1, ta.Pending())
	assert.Equal(t, []int{0}, rec.changeIndexes)

	ta.Flush(nil)
	assert.Equal(t, []int{0, 1}, rec.changeIndexes)
	require.Len(t, rec.optionChanges, 2)
	assert.Equal(t, "alpha", rec.optionChanges[0].Option)
	assert.Equal(t, "alps", rec.optionChanges[1].Option)
}

func TestInputChanged_DrainsPreviousNavigation(t *testing.T) {
	rec := &recorder{}
	ta := newTestTypeahead(t, []string{"alpha", "alps", "beta"}, rec)
	ta.InputChanged("a")
	ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyDown})
	require.Equal(t, 1, ta.Pending())

	ta.InputChanged("al")

	assert.Equal(t, 0, ta.Pending())
	require.Len(t, rec.optionChanges, 1)
	assert.Equal(t, "alpha", rec.optionChanges[0].Option)
	assert.Equal(t, []int{0}, rec.changeIndexes)

	// a late flush has nothing left to report
	ta.Flush(nil)
	assert.Len(t, rec.optionChanges, 1)

	st := ta.State()
	assert.Equal(t, "al", st.InputValue)
	assert.Equal(t, -1, st.SelectedIndex)
	assert.False(t, st.HasPreviousInput)
}

func TestCloseAll_Idempotent(t *testing.T) {
	rec := &recorder{}
	ta := newTestTypeahead(t, []string{"apple"}, rec)
	ta.FocusGained()

	ta.CloseAll()
	ta.CloseAll()
	ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyEscape})

	assert.Equal(t, 1, rec.count("open"))
	assert.Equal(t, 1, rec.count("close"))
}

func TestClickOption(t *testing.T) {
	rec := &recorder{}
	ta := newTestTypeahead(t, []string{"apple", "apricot"}, rec)
	ta.InputChanged("ap")

	out := ta.ClickOption(1, typeahead.PointerEvent{X: 3, Y: 2})

	assert.True(t, out.FocusInput)
	st := ta.State()
	assert.Equal(t, 1, st.SelectedIndex)
	assert.False(t, st.DropdownVisible)
	assert.False(t, st.HintVisible)
	assert.Equal(t, []int{1}, rec.clicked)
	assert.Equal(t, []string{"change", "open", "optionclick", "close"}, rec.calls)

	assert.Equal(t, typeahead.Outcome{}, ta.ClickOption(5, typeahead.PointerEvent{}))
}

func TestHoverSelect(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		ta := newTestTypeahead(t, []string{"a", "b"}, &recorder{})
		ta.FocusGained()

		ta.HoverOption(1)
		assert.Equal(t, 1, ta.State().SelectedIndex)
		assert.True(t, ta.State().DropdownVisible)

		ta.LeaveOptions()
		assert.Equal(t, -1, ta.State().SelectedIndex)
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := typeahead.DefaultConfig()
		cfg.HoverSelect = false
		ta, err := typeahead.New[string](context.Background(), typeahead.Params[string]{Config: cfg, Options: []string{"a", "b"}})
		require.NoError(t, err)
		ta.Activate(nil)

		ta.Navigate(1)
		ta.HoverOption(1)
		assert.Equal(t, 0, ta.State().SelectedIndex)
		ta.LeaveOptions()
		assert.Equal(t, 0, ta.State().SelectedIndex)
	})
}

func TestSetOptions_ShrinkReclamps(t *testing.T) {
	ta := newTestTypeahead(t, []string{"a", "b", "c"}, &recorder{})
	ta.Navigate(-1)
	require.Equal(t, 2, ta.State().SelectedIndex)

	ta.SetOptions([]string{"a", "b"})
	assert.Equal(t, -1, ta.State().SelectedIndex)
	assert.Nil(t, ta.Nodes().Option(2))
	assert.NotNil(t, ta.Nodes().Option(1))

	ta.Navigate(1)
	ta.SetOptions([]string{"x", "y", "z"})
	assert.Equal(t, 0, ta.State().SelectedIndex)
}

func TestSetOptions_RecomputesVisibleHint(t *testing.T) {
	ta := newTestTypeahead(t, []string{"apple"}, &recorder{})
	ta.InputChanged("ap")
	require.True(t, ta.State().HintVisible)

	ta.SetOptions([]string{"banana"})
	assert.False(t, ta.State().HintVisible)
}

func TestOutsideInteraction_PointerPressCloses(t *testing.T) {
	doc := document.New()
	rec := &recorder{}
	cfg := typeahead.DefaultConfig()
	ta, err := typeahead.New(testCtx(), typeahead.Params[string]{
		Config:    cfg,
		Resolver:  autocomplete.StringResolver(false),
		Callbacks: rec.callbacks(),
		Options:   []string{"apple"},
	})
	require.NoError(t, err)
	doc.Window().Append(ta.Nodes().Root)
	other := doc.Window().Append(document.NewNode("done-button"))

	ta.Activate(doc)
	ta.Activate(doc)
	assert.Equal(t, 1, doc.ListenerCount(document.PointerDown, document.Bubble))
	assert.Equal(t, 1, doc.ListenerCount(document.FocusChange, document.Capture))

	ta.FocusGained()
	require.True(t, ta.State().DropdownVisible)

	doc.Dispatch(document.Event{Type: document.PointerDown, Target: ta.Nodes().Input})
	doc.Dispatch(document.Event{Type: document.PointerDown, Target: doc.Window()})
	assert.True(t, ta.State().DropdownVisible)

	doc.Dispatch(document.Event{Type: document.PointerDown, Target: other})
	assert.False(t, ta.State().DropdownVisible)
	assert.Equal(t, 1, rec.count("close"))

	doc.Dispatch(document.Event{Type: document.PointerDown, Target: other})
	assert.Equal(t, 1, rec.count("close"))

	ta.FocusGained()
	doc.Dispatch(document.Event{Type: document.FocusChange, Target: other})
	assert.False(t, ta.State().DropdownVisible)
	assert.Equal(t, 2, rec.count("close"))

	ta.Deactivate()
	assert.Equal(t, 0, doc.ListenerCount(document.PointerDown, document.Bubble))
	assert.Equal(t, 0, doc.ListenerCount(document.FocusChange, document.Capture))
	assert.False(t, ta.IsActive())
}

func TestOutsideInteraction_IndependentInstances(t *testing.T) {
	doc := document.New()
	newWidget := func(namespace string, rec *recorder) *typeahead.Typeahead[string] {
		cfg := typeahead.DefaultConfig()
		cfg.Namespace = namespace
		ta, err := typeahead.New(testCtx(), typeahead.Params[string]{
			Config:    cfg,
			Resolver:  autocomplete.StringResolver(false),
			Callbacks: rec.callbacks(),
			Options:   []string{"apple"},
		})
		require.NoError(t, err)
		doc.Window().Append(ta.Nodes().Root)
		ta.Activate(doc)
		return ta
	}

	recA, recB := &recorder{}, &recorder{}
	a := newWidget("first", recA)
	b := newWidget("second", recB)
	assert.Equal(t, 2, doc.ListenerCount(document.PointerDown, document.Bubble))
	assert.Equal(t, 2, doc.ListenerCount(document.FocusChange, document.Capture))

	a.FocusGained()
	b.FocusGained()

	doc.Dispatch(document.Event{Type: document.PointerDown, Target: a.Nodes().Input})
	assert.True(t, a.State().DropdownVisible)
	assert.False(t, b.State().DropdownVisible)
	assert.Equal(t, 0, recA.count("close"))
	assert.Equal(t, 1, recB.count("close"))

	a.Deactivate()
	assert.Equal(t, 1, doc.ListenerCount(document.PointerDown, document.Bubble))
	assert.Equal(t, 1, doc.ListenerCount(document.FocusChange, document.Capture))

	b.FocusGained()
	doc.Dispatch(document.Event{Type: document.FocusChange, Target: a.Nodes().Input})
	assert.False(t, b.State().DropdownVisible)
	assert.Equal(t, 2, recB.count("close"))
	assert.Equal(t, 0, recA.count("close"))
}

func TestPassThroughCallbacks(t *testing.T) {
	rec := &recorder{}
	ta := newTestTypeahead(t, []string{"a"}, rec)

	ta.Blurred()
	ta.InputClicked()
	ta.KeyUp(typeahead.KeyEvent{Key: typeahead.KeyOther, Name: "a"})
	ta.KeyPress(typeahead.KeyEvent{Key: typeahead.KeyOther, Name: "a"})

	assert.Equal(t, []string{"blur", "inputclick", "keyup", "keypress"}, rec.calls)
}

func TestStatus(t *testing.T) {
	rec := &recorder{}
	cb := rec.callbacks()
	cb.GetMessageForOption = func(a typeahead.Active[string]) string {
		if !a.IsOption() {
			return ""
		}
		return "option " + a.Option
	}
	ta, err := typeahead.New(context.Background(), typeahead.Params[string]{
		Config:    typeahead.DefaultConfig(),
		Callbacks: cb,
		Options:   []string{"apple", "apricot"},
	})
	require.NoError(t, err)
	ta.Activate(nil)
	ta.InputChanged("ap")

	st := ta.Status()
	assert.Equal(t, "ap", st.ActiveOption)
	assert.Equal(t, "2 suggestions are available. Use up and down arrows to select.", st.IncomingOptions)

	ta.Navigate(1)
	assert.Equal(t, "option apple", ta.Status().ActiveOption)
}

func TestDeactivate_DiscardsState(t *testing.T) {
	rec := &recorder{}
	ta := newTestTypeahead(t, []string{"apple"}, rec)
	ta.InputChanged("ap")
	ta.KeyDown(typeahead.KeyEvent{Key: typeahead.KeyDown})
	require.Equal(t, 1, ta.Pending())

	ta.Deactivate()
	ta.Activate(nil)

	st := ta.State()
	assert.Equal(t, -1, st.SelectedIndex)
	assert.False(t, st.DropdownVisible)
	assert.False(t, st.HasUserInput)
	assert.Equal(t, 0, ta.Pending())
	assert.Equal(t, 0, rec.count("close"))
}
