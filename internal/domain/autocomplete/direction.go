package autocomplete

import "golang.org/x/text/unicode/bidi"

// Direction is the writing direction of a piece of text.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// DirectionDetector reports the writing direction of text.
type DirectionDetector func(text string) Direction

// DetectDirection returns the direction of the first strongly typed character in text.
// Text without strong characters is LTR.
func DetectDirection(text string) Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return RTL
		case bidi.L:
			return LTR
		}
	}
	return LTR
}
