package typeahead

import "github.com/bnema/typeahead/internal/ui/document"

// outsideDetector closes the widget when a pointer press or focus change
// originates outside its subtree.
type outsideDetector struct {
	target   document.EventTarget
	root     *document.Node
	onClose  func()
	releases []func()
}

func newOutsideDetector(target document.EventTarget, root *document.Node, onClose func()) *outsideDetector {
	return &outsideDetector{target: target, root: root, onClose: onClose}
}

// acquire subscribes the listener pair. A second call is a no-op.
func (d *outsideDetector) acquire() {
	if d.releases != nil || d.target == nil {
		return
	}
	d.releases = []func(){
		d.target.AddEventListener(document.PointerDown, document.Bubble, d.handle),
		// focus changes do not bubble
		d.target.AddEventListener(document.FocusChange, document.Capture, d.handle),
	}
}

func (d *outsideDetector) release() {
	for _, release := range d.releases {
		release()
	}
	d.releases = nil
}

func (d *outsideDetector) handle(ev document.Event) {
	if ev.Target == nil || ev.Target == d.target.Window() || d.root.Contains(ev.Target) {
		return
	}
	d.onClose()
}
