package typeahead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIndex(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		direction int
		n         int
		want      int
	}{
		{"down from input", -1, 1, 3, 0},
		{"down past last wraps to input", 2, 1, 3, -1},
		{"up from input wraps to last", -1, -1, 3, 2},
		{"up from first returns to input", 0, -1, 3, -1},
		{"stale index is clamped first", 7, 1, 3, 0},
		{"empty list stays on input", -1, 1, 0, -1},
		{"empty list up stays on input", -1, -1, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextIndex(tt.current, tt.direction, tt.n))
		})
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name                string
		top, height         int
		scrollTop, viewport int
		want                int
		changed             bool
	}{
		{name: "fully visible", top: 2, height: 1, scrollTop: 0, viewport: 5, want: 0},
		{name: "above viewport", top: 1, height: 1, scrollTop: 3, viewport: 5, want: 1, changed: true},
		{name: "below viewport", top: 6, height: 2, scrollTop: 0, viewport: 5, want: 3, changed: true},
		{name: "taller than viewport", top: 6, height: 9, scrollTop: 0, viewport: 5, want: 6, changed: true},
		{name: "touching trailing edge", top: 4, height: 1, scrollTop: 0, viewport: 5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := ScrollOffset(tt.top, tt.height, tt.scrollTop, tt.viewport)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestIdentity(t *testing.T) {
	id := NewIdentity("search")
	assert.Equal(t, "typeahead-input-search", id.InputID)
	assert.Equal(t, "typeahead-options-search", id.OptionsID)
	assert.Equal(t, "typeahead-options-search-3", id.OptionID(3))

	a, b := NewIdentity(""), NewIdentity("")
	assert.NotEqual(t, a.Namespace, b.Namespace)
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Placeholder = "two\nlines"
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "placeholder")
}
