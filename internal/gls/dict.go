package gls

import (
	"fmt"
	"sort"
)

// Warning is a non-fatal diagnostic raised while building the dictionary.
type Warning struct {
	ID  string
	Msg string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.ID, w.Msg)
}

// state tracks one abbreviation and its usage latch. used starts false
// and flips to true on the first render of any reference to the id; it
// never resets.
type state struct {
	def  Definition
	used bool
}

// Dictionary maps abbreviation identifiers to their definitions and
// usage state for the lifetime of one run.
type Dictionary map[string]*state

// Definitions returns the collected definitions sorted by id.
func (d Dictionary) Definitions() []Definition {
	defs := make([]Definition, 0, len(d))
	for _, st := range d {
		defs = append(defs, st.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// BuildDictionary makes a single pass over the entry sequence and
// collects every definition. A later definition with the same id
// overwrites an earlier one; this is not an error. Definitions with an
// empty long form are kept but reported as warnings.
func BuildDictionary(entries []Entry) (Dictionary, []Warning) {
	dict := make(Dictionary)
	var warnings []Warning

	for _, entry := range entries {
		def, ok := entry.(Definition)
		if !ok {
			continue
		}
		if def.Long == "" {
			warnings = append(warnings, Warning{ID: def.ID, Msg: "definition has an empty long form"})
		}
		dict[def.ID] = &state{def: def}
	}

	return dict, warnings
}
