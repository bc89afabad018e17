package typeahead

import (
	"strconv"

	"github.com/google/uuid"
)

// Identity correlates the editable field, the option list and the active option
// for assistive technology. It is generated once per widget.
type Identity struct {
	Namespace          string
	RootID             string
	HintID             string
	InputID            string
	OptionsID          string
	ActiveDescendantID string
}

// NewIdentity derives all element IDs from namespace, generating one when empty.
func NewIdentity(namespace string) Identity {
	if namespace == "" {
		namespace = uuid.NewString()
	}
	return Identity{
		Namespace:          namespace,
		RootID:             "typeahead-" + namespace,
		HintID:             "typeahead-hint-" + namespace,
		InputID:            "typeahead-input-" + namespace,
		OptionsID:          "typeahead-options-" + namespace,
		ActiveDescendantID: "typeahead-activedescendant-" + namespace,
	}
}

// OptionID returns the element ID of the option row at index.
func (id Identity) OptionID(index int) string {
	return id.OptionsID + "-" + strconv.Itoa(index)
}
