// Package script runs user-supplied JavaScript hint functions.
//
// A hint script defines a global function
//
//	function hint(input, options) { ... }
//
// receiving the typed text and the current option values, and returning the
// completion to show (a string starting with input) or an empty value for none.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/grafana/sobek"

	"github.com/bnema/typeahead/internal/domain/autocomplete"
	"github.com/bnema/typeahead/internal/logging"
)

// ErrNoHintFunction is returned when a script does not define hint().
var ErrNoHintFunction = errors.New("script does not define a hint function")

const (
	hintFunctionName   = "hint"
	defaultEvalTimeout = 250 * time.Millisecond
)

// Resolver evaluates a hint script. It is safe for concurrent use; calls are
// serialized on the single JavaScript runtime.
type Resolver struct {
	name    string
	timeout time.Duration

	mu   sync.Mutex
	rt   *sobek.Runtime
	hint sobek.Callable
}

// Load compiles the hint script at path.
func Load(ctx context.Context, path string) (*Resolver, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hint script: %w", err)
	}
	return Compile(ctx, path, string(src))
}

// Compile runs src once and binds its hint function.
func Compile(ctx context.Context, name, src string) (*Resolver, error) {
	log := logging.FromContext(ctx)

	rt := sobek.New()
	rt.SetFieldNameMapper(sobek.UncapFieldNameMapper())

	if _, err := rt.RunScript(name, src); err != nil {
		return nil, fmt.Errorf("failed to evaluate %s: %w", name, err)
	}

	hint, ok := sobek.AssertFunction(rt.Get(hintFunctionName))
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNoHintFunction)
	}

	log.Debug().Str("script", name).Msg("hint script loaded")
	return &Resolver{name: name, timeout: defaultEvalTimeout, rt: rt, hint: hint}, nil
}

// Resolve calls hint(input, options). Null and undefined results mean no hint.
// A call running longer than the evaluation timeout is interrupted.
func (r *Resolver) Resolve(input string, options []string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]any, len(options))
	for i, o := range options {
		items[i] = o
	}

	timer := time.AfterFunc(r.timeout, func() {
		r.rt.Interrupt(fmt.Sprintf("hint exceeded %s", r.timeout))
	})
	res, err := r.hint(sobek.Undefined(), r.rt.ToValue(input), r.rt.NewArray(items...))
	timer.Stop()
	r.rt.ClearInterrupt()

	if err != nil {
		return "", fmt.Errorf("%s: hint(%q) failed: %w", r.name, input, err)
	}
	if res == nil || sobek.IsUndefined(res) || sobek.IsNull(res) {
		return "", nil
	}
	return res.String(), nil
}

// HintResolver adapts r to the widget's resolver signature.
// A failing script panics with the wrapped error.
func (r *Resolver) HintResolver() autocomplete.HintResolver[string] {
	return func(input string, options []string) string {
		hint, err := r.Resolve(input, options)
		if err != nil {
			panic(err)
		}
		return hint
	}
}
