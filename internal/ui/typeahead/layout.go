package typeahead

import "github.com/bnema/typeahead/internal/ui/document"

// Layout is the freshly rendered geometry of the option list, handed to Flush.
type Layout interface {
	// OptionBounds returns the offset and height of option row index within the
	// list content. ok is false when the row is not laid out.
	OptionBounds(index int) (top, height int, ok bool)
	// Viewport returns the list's current scroll offset and visible height.
	Viewport() (scrollTop, height int)
	// ScrollTo sets the list's scroll offset.
	ScrollTo(offset int)
}

// Nodes is the widget's rendered subtree.
type Nodes struct {
	Root    *document.Node
	Hint    *document.Node
	Input   *document.Node
	Options *document.Node
	rows    []*document.Node
}

func newNodes(id Identity) *Nodes {
	root := document.NewNode(id.RootID)
	return &Nodes{
		Root:    root,
		Hint:    root.Append(document.NewNode(id.HintID)),
		Input:   root.Append(document.NewNode(id.InputID)),
		Options: root.Append(document.NewNode(id.OptionsID)),
	}
}

// Option returns the row node at index, or nil.
func (n *Nodes) Option(index int) *document.Node {
	if index < 0 || index >= len(n.rows) {
		return nil
	}
	return n.rows[index]
}

func (n *Nodes) syncOptions(id Identity, count int) {
	if count == len(n.rows) {
		return
	}
	n.Options.RemoveChildren()
	n.rows = make([]*document.Node, count)
	for i := range n.rows {
		n.rows[i] = n.Options.Append(document.NewNode(id.OptionID(i)))
	}
}
