package gls

// Flags describes the rendering modifiers carried by a reference.
type Flags uint

const (
	// None renders the default form.
	None Flags = 0
	// Plural appends "s" to each rendered unit.
	Plural Flags = 1 << 0
	// Uppercase capitalizes the first character of the first rendered unit.
	Uppercase Flags = 1 << 1
	// First forces the long form even if the abbreviation was used before.
	First Flags = 1 << 2
)

// Definition is a parsed \newacronym: an identifier with its short and
// long forms. Short and Long are raw group captures; nested {...} groups
// inside them are preserved verbatim, braces included.
type Definition struct {
	ID    string
	Short string
	Long  string
}

// Reference is a parsed occurrence of one of the \gls commands.
type Reference struct {
	ID    string
	Flags Flags
}

// Literal is a run of document text outside any recognized command.
type Literal string

// Entry is one parsed unit of the input document: a Literal, a
// Definition, or a Reference. Entries are immutable once parsed and are
// consumed twice, first by the dictionary pass and then by the expander.
type Entry interface {
	entry()
}

func (Literal) entry()    {}
func (Definition) entry() {}
func (Reference) entry()  {}
