package gls

// DefaultWrapper is the markup command stripped by the final pass.
const DefaultWrapper = "hyperref"

// Pipeline runs the full expansion: parse, build the dictionary, expand
// references, and optionally strip wrapper markup from the result.
type Pipeline struct {
	// Wrapper is the command name (without backslash) removed by the
	// stripping pass.
	Wrapper string
	// Strip enables the stripping pass over the expanded text.
	Strip bool
}

// New returns a pipeline with the default wrapper and stripping enabled.
func New() *Pipeline {
	return &Pipeline{Wrapper: DefaultWrapper, Strip: true}
}

// Run expands one document. It either returns the complete output text
// or an error; a failing run never surfaces partial output. Warnings are
// non-fatal and may accompany a successful result.
func (p *Pipeline) Run(input string) (string, []Warning, error) {
	entries, err := Parse(input)
	if err != nil {
		return "", nil, err
	}

	dict, warnings := BuildDictionary(entries)

	output, err := Expand(entries, dict)
	if err != nil {
		return "", warnings, err
	}

	if p.Strip {
		output, err = Strip(output, p.Wrapper)
		if err != nil {
			return "", warnings, err
		}
	}

	return output, warnings, nil
}
