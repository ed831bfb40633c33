package gls

import "strings"

// Strip removes wrapper markup from already-expanded text. Every
// occurrence of \<wrapper>[options]{body} is replaced by body with the
// outer braces stripped; the command name and the option block are
// discarded. All other text is copied verbatim and the emitted body is
// not re-scanned, so nothing gets expanded twice. An empty wrapper name
// disables the pass.
func Strip(input, wrapper string) (string, error) {
	if wrapper == "" {
		return input, nil
	}
	token := "\\" + wrapper

	s := &scanner{input: input}
	var out strings.Builder

	for !s.eof() {
		i := strings.Index(s.input[s.pos:], token)
		if i < 0 {
			out.WriteString(s.input[s.pos:])
			break
		}
		out.WriteString(s.input[s.pos : s.pos+i])
		s.pos += i

		start := s.pos
		s.pos += len(token)

		if s.eof() || s.input[s.pos] != '[' {
			return "", s.errorf(start, "wrapper command missing its option block")
		}
		if err := s.skipOptions(); err != nil {
			return "", err
		}
		body, err := s.parseGroup()
		if err != nil {
			return "", err
		}
		out.WriteString(body)
	}

	return out.String(), nil
}
