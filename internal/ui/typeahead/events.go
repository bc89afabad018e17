package typeahead

// Key is a key the dispatch policy distinguishes. Everything else is KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyEnd
	KeyTab
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyEnd:
		return "end"
	case KeyTab:
		return "tab"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "other"
	}
}

// KeyEvent is a key press as seen by the editable field.
type KeyEvent struct {
	Key Key
	// Name is the host's name for the key, e.g. "ctrl+a".
	Name  string
	Shift bool
	// CursorAtEnd reports whether the caret sits after the last character.
	CursorAtEnd bool
}

// PointerEvent is a pointer press on an option row.
type PointerEvent struct {
	X, Y int
}

// Outcome tells the host what to do after the widget handled an event.
type Outcome struct {
	// PreventDefault suppresses the editable field's own handling of the key.
	PreventDefault bool
	// FocusInput asks the host to move focus to the editable field.
	FocusInput bool
}

// Active is the data currently standing for the selection: an option when
// Index >= 0, otherwise the raw input text.
type Active[T any] struct {
	Index  int
	Option T
	Input  string
}

// IsOption reports whether an option is active.
func (a Active[T]) IsOption() bool {
	return a.Index >= 0
}
