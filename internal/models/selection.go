package models

import "sort"

// Selection is the choice made for one customization group. It is either a
// SingleChoice or a MultiChoice.
type Selection interface {
	Contains(optionID string) bool
	Empty() bool
	OptionIDs() []string
	clone() Selection
}

// SingleChoice holds the one option picked in a single-mode group.
type SingleChoice string

func (s SingleChoice) Contains(optionID string) bool {
	return s != "" && string(s) == optionID
}

func (s SingleChoice) Empty() bool { return s == "" }

func (s SingleChoice) OptionIDs() []string {
	if s == "" {
		return nil
	}
	return []string{string(s)}
}

func (s SingleChoice) clone() Selection { return s }

// MultiChoice holds the set of options picked in a multi-mode group.
type MultiChoice map[string]struct{}

func NewMultiChoice(optionIDs ...string) MultiChoice {
	m := make(MultiChoice, len(optionIDs))
	for _, id := range optionIDs {
		if id == "" {
			continue
		}
		m[id] = struct{}{}
	}
	return m
}

func (m MultiChoice) Contains(optionID string) bool {
	_, ok := m[optionID]
	return ok
}

func (m MultiChoice) Empty() bool { return len(m) == 0 }

// OptionIDs returns the selected ids in sorted order.
func (m MultiChoice) OptionIDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m MultiChoice) clone() Selection {
	return NewMultiChoice(m.OptionIDs()...)
}

// Selections maps a customization group id to its selection.
type Selections map[string]Selection

// Clone returns a deep copy, used when a cart line snapshots its choices.
func (s Selections) Clone() Selections {
	if s == nil {
		return Selections{}
	}
	out := make(Selections, len(s))
	for groupID, sel := range s {
		if sel == nil {
			continue
		}
		out[groupID] = sel.clone()
	}
	return out
}

// NewSelection builds the selection variant matching the group's mode. A
// single-mode group keeps only the first non-empty id.
func NewSelection(group CustomizationGroup, optionIDs ...string) Selection {
	if group.Mode == SelectionSingle {
		for _, id := range optionIDs {
			if id != "" {
				return SingleChoice(id)
			}
		}
		return SingleChoice("")
	}
	return NewMultiChoice(optionIDs...)
}

// SelectionsFromIDs converts raw option ids keyed by group into typed
// selections using the item's group modes. Groups the item does not declare
// are dropped.
func SelectionsFromIDs(item MenuItem, raw map[string][]string) Selections {
	out := make(Selections, len(raw))
	for groupID, ids := range raw {
		group, ok := item.Group(groupID)
		if !ok {
			continue
		}
		out[groupID] = NewSelection(group, ids...)
	}
	return out
}

// DefaultSelections mirrors the initial state of a customization sheet:
// required single groups start on their first option and multi groups start
// empty.
func DefaultSelections(item MenuItem) Selections {
	out := Selections{}
	for _, g := range item.Customizations {
		switch g.Mode {
		case SelectionSingle:
			if g.Required && len(g.Options) > 0 {
				out[g.ID] = SingleChoice(g.Options[0].ID)
			}
		case SelectionMulti:
			out[g.ID] = NewMultiChoice()
		}
	}
	return out
}
