package typeahead

import "fmt"

// Callbacks is the caller-facing notification surface. Every field is optional.
type Callbacks[T any] struct {
	OnChange       func(value string)
	OnFocus        func()
	OnBlur         func()
	OnInputClick   func()
	OnComplete     func(ev KeyEvent, completion string)
	OnOptionClick  func(ev PointerEvent, option T, index int)
	OnOptionChange func(ev KeyEvent, active Active[T], index int)
	OnKeyDown      func(ev KeyEvent, active Active[T], index int)
	OnKeyUp        func(ev KeyEvent)
	OnKeyPress     func(ev KeyEvent)

	// OnDropdownOpen and OnDropdownClose fire once per visibility transition.
	OnDropdownOpen  func()
	OnDropdownClose func()

	// GetMessageForOption describes the active option for screen readers.
	// An empty message falls back to the input value.
	GetMessageForOption func(active Active[T]) string
	// GetMessageForIncomingOptions announces how many options are available.
	GetMessageForIncomingOptions func(count int) string
}

// DefaultIncomingOptionsMessage is the announcement used when the caller sets none.
func DefaultIncomingOptionsMessage(count int) string {
	return fmt.Sprintf("%d suggestions are available. Use up and down arrows to select.", count)
}

func (c Callbacks[T]) withDefaults() Callbacks[T] {
	if c.OnChange == nil {
		c.OnChange = func(string) {}
	}
	if c.OnFocus == nil {
		c.OnFocus = func() {}
	}
	if c.OnBlur == nil {
		c.OnBlur = func() {}
	}
	if c.OnInputClick == nil {
		c.OnInputClick = func() {}
	}
	if c.OnComplete == nil {
		c.OnComplete = func(KeyEvent, string) {}
	}
	if c.OnOptionClick == nil {
		c.OnOptionClick = func(PointerEvent, T, int) {}
	}
	if c.OnOptionChange == nil {
		c.OnOptionChange = func(KeyEvent, Active[T], int) {}
	}
	if c.OnKeyDown == nil {
		c.OnKeyDown = func(KeyEvent, Active[T], int) {}
	}
	if c.OnKeyUp == nil {
		c.OnKeyUp = func(KeyEvent) {}
	}
	if c.OnKeyPress == nil {
		c.OnKeyPress = func(KeyEvent) {}
	}
	if c.OnDropdownOpen == nil {
		c.OnDropdownOpen = func() {}
	}
	if c.OnDropdownClose == nil {
		c.OnDropdownClose = func() {}
	}
	if c.GetMessageForOption == nil {
		c.GetMessageForOption = func(Active[T]) string { return "" }
	}
	if c.GetMessageForIncomingOptions == nil {
		c.GetMessageForIncomingOptions = DefaultIncomingOptionsMessage
	}
	return c
}
