package gls

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UndefinedReferenceError reports a reference whose id has no definition
// anywhere in the document. It aborts the run on first occurrence.
type UndefinedReferenceError struct {
	ID string
}

func (e *UndefinedReferenceError) Error() string {
	return fmt.Sprintf("missing definition for %q", e.ID)
}

// Expand makes a single pass over the entry sequence and renders it to
// text. Literals pass through verbatim, definitions produce no output,
// and references are rendered against the dictionary, advancing each
// id's usage latch. The dictionary must already contain every
// definition: a reference resolves against the final definition for its
// id even when that definition appears later in the document.
func Expand(entries []Entry, dict Dictionary) (string, error) {
	var out strings.Builder

	for _, entry := range entries {
		switch e := entry.(type) {
		case Literal:
			out.WriteString(string(e))
		case Definition:
			// already collected by the dictionary pass
		case Reference:
			st, ok := dict[e.ID]
			if !ok {
				return "", &UndefinedReferenceError{ID: e.ID}
			}
			out.WriteString(render(st.def, e.Flags, st.used))
			st.used = true
		}
	}

	return out.String(), nil
}

// render produces the text for one reference. The long combined form
// "long (short)" is used until the id has been rendered once; after
// that only the short form appears. First forces the combined form
// without blocking the usage latch.
func render(def Definition, flags Flags, used bool) string {
	short := used && flags&First == 0

	suffix := ""
	if flags&Plural != 0 {
		suffix = "s"
	}

	if short {
		text := def.Short + suffix
		if flags&Uppercase != 0 {
			text = capitalize(text)
		}
		return text
	}

	head := def.Long + suffix
	if flags&Uppercase != 0 {
		head = capitalize(head)
	}
	return head + " (" + def.Short + suffix + ")"
}

// capitalize upcases only the first rune, leaving the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
