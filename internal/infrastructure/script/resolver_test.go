package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lastWordScript = `
function hint(input, options) {
	const lower = input.toLowerCase();
	const match = options.find(o => o.toLowerCase().startsWith(lower));
	return match ? input + match.slice(input.length) : "";
}
`

func TestResolver_Resolve(t *testing.T) {
	r, err := Compile(context.Background(), "hint.js", lastWordScript)
	require.NoError(t, err)

	tests := []struct {
		input   string
		options []string
		want    string
	}{
		{"ap", []string{"banana", "Apple"}, "apple"},
		{"AP", []string{"apricot"}, "APricot"},
		{"zz", []string{"apple"}, ""},
		{"", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := r.Resolve(tt.input, tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_NullMeansNoHint(t *testing.T) {
	r, err := Compile(context.Background(), "null.js", `function hint() { return null; }`)
	require.NoError(t, err)

	got, err := r.Resolve("a", []string{"ab"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCompile_Errors(t *testing.T) {
	_, err := Compile(context.Background(), "empty.js", `const x = 1;`)
	assert.ErrorIs(t, err, ErrNoHintFunction)

	_, err = Compile(context.Background(), "broken.js", `function hint( {`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to evaluate broken.js")
}

func TestResolver_HintResolverPanicsOnScriptError(t *testing.T) {
	r, err := Compile(context.Background(), "throw.js", `function hint() { throw new Error("boom"); }`)
	require.NoError(t, err)

	resolve := r.HintResolver()
	assert.Panics(t, func() { resolve("a", nil) })
}

func TestResolver_Timeout(t *testing.T) {
	r, err := Compile(context.Background(), "loop.js", `function hint() { for (;;) {} }`)
	require.NoError(t, err)
	r.timeout = 20 * time.Millisecond

	_, err = r.Resolve("a", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loop.js")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hint.js")
	require.NoError(t, os.WriteFile(path, []byte(lastWordScript), 0o600))

	r, err := Load(context.Background(), path)
	require.NoError(t, err)

	got := r.HintResolver()("ba", []string{"banana"})
	assert.Equal(t, "banana", got)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.js"))
	assert.Error(t, err)
}
