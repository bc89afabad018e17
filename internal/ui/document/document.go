// Package document models the host's element tree and its document-wide event streams.
//
// Listeners are registered per event type and phase. Dispatch runs every capturing
// listener before any bubbling listener, mirroring how a focus change (which does not
// bubble) can still be observed globally by listening in the capture phase.
package document

import "sync"

// EventType identifies a document-wide event stream.
type EventType int

const (
	PointerDown EventType = iota
	FocusChange
)

func (t EventType) String() string {
	switch t {
	case PointerDown:
		return "pointerdown"
	case FocusChange:
		return "focus"
	default:
		return "unknown"
	}
}

// Phase selects when a listener runs during dispatch.
type Phase int

const (
	Capture Phase = iota
	Bubble
)

// Event is a single occurrence on a document stream.
// A nil Target is treated as the window.
type Event struct {
	Type   EventType
	Target *Node
}

// Listener handles document events.
type Listener func(Event)

// EventTarget is the part of a document widgets subscribe to.
type EventTarget interface {
	// AddEventListener registers l and returns the function releasing it.
	AddEventListener(t EventType, phase Phase, l Listener) (release func())
	// Window returns the top-level node.
	Window() *Node
}

type listenerKey struct {
	typ   EventType
	phase Phase
}

type registration struct {
	id uint64
	l  Listener
}

// Document owns the window node and the listener registry.
type Document struct {
	window *Node

	mu        sync.Mutex
	nextID    uint64
	listeners map[listenerKey][]registration
}

// New creates a document with an empty window node.
func New() *Document {
	return &Document{
		window:    NewNode("window"),
		listeners: make(map[listenerKey][]registration),
	}
}

// Window returns the top-level node.
func (d *Document) Window() *Node {
	return d.window
}

// AddEventListener registers l for events of type t in the given phase.
// The returned release function is safe to call more than once.
func (d *Document) AddEventListener(t EventType, phase Phase, l Listener) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	key := listenerKey{typ: t, phase: phase}
	d.listeners[key] = append(d.listeners[key], registration{id: id, l: l})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(key, id) })
	}
}

func (d *Document) remove(key listenerKey, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	regs := d.listeners[key]
	for i, r := range regs {
		if r.id == id {
			d.listeners[key] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	if len(d.listeners[key]) == 0 {
		delete(d.listeners, key)
	}
}

// Dispatch delivers ev to capturing listeners, then to bubbling listeners.
// Listeners registered or released during dispatch take effect on the next event.
func (d *Document) Dispatch(ev Event) {
	if ev.Target == nil {
		ev.Target = d.window
	}
	for _, phase := range []Phase{Capture, Bubble} {
		for _, l := range d.snapshot(listenerKey{typ: ev.Type, phase: phase}) {
			l(ev)
		}
	}
}

func (d *Document) snapshot(key listenerKey) []Listener {
	d.mu.Lock()
	defer d.mu.Unlock()

	regs := d.listeners[key]
	out := make([]Listener, len(regs))
	for i, r := range regs {
		out[i] = r.l
	}
	return out
}

// ListenerCount returns the number of live listeners for t in phase.
func (d *Document) ListenerCount(t EventType, phase Phase) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[listenerKey{typ: t, phase: phase}])
}
