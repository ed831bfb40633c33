package gls

import (
	"fmt"
	"strings"
)

// ParseError reports where and why tokenization failed. Offset is the
// byte position in the input; Line and Col are 1-based.
type ParseError struct {
	Offset int
	Line   int
	Col    int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d col %d", e.Msg, e.Line, e.Col)
}

// command describes one recognized macro: its literal name, the modifier
// flags it sets, and whether it is the three-group definition form.
type command struct {
	name       string
	flags      Flags
	definition bool
}

// Alternatives are tried in this order with backtracking, so \glspl is
// still recognized even though \gls is tried first: \gls matches the
// name but fails to find a group at 'p' and the scanner backs up.
var commands = []command{
	{"\\newacronym", None, true},
	{"\\gls", None, false},
	{"\\glspl", Plural, false},
	{"\\Gls", Uppercase, false},
	{"\\Glsfirst", Uppercase | First, false},
	{"\\Glspl", Uppercase | Plural, false},
}

// commandPrefixes bound literal runs. The set is prefix-closed: every
// recognized command name starts with one of these.
var commandPrefixes = []string{"\\newacronym", "\\gls", "\\Gls"}

// referenceStem starts the sibling-swallow rule: the stem followed by one
// or more letters, when it is not an exact recognized command, is
// consumed silently and produces no entry.
const referenceStem = "\\gls"

// Parse tokenizes a macro-laden document into an ordered entry sequence
// covering every input byte. It fails on unbalanced braces and truncated
// commands; on failure no entries are returned.
func Parse(input string) ([]Entry, error) {
	s := &scanner{input: input}
	var entries []Entry

	for !s.eof() {
		if entry, ok, err := s.matchCommand(); err != nil {
			return nil, err
		} else if ok {
			if entry != nil {
				entries = append(entries, entry)
			}
			continue
		}

		entries = append(entries, Literal(s.literalRun()))
	}

	return entries, nil
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) errorf(offset int, format string, args ...interface{}) *ParseError {
	line, col := position(s.input, offset)
	return &ParseError{
		Offset: offset,
		Line:   line,
		Col:    col,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// matchCommand tries every recognized command at the current position,
// then the sibling-swallow rule. It returns ok=false when the position
// does not start a command at all, a nil entry when a sibling command
// was swallowed, and an error when a command name is present but its
// arguments cannot be completed.
func (s *scanner) matchCommand() (Entry, bool, error) {
	start := s.pos
	var argErr *ParseError

	for _, cmd := range commands {
		if !strings.HasPrefix(s.input[s.pos:], cmd.name) {
			continue
		}
		s.pos += len(cmd.name)

		entry, err := s.commandArgs(cmd)
		if err == nil {
			return entry, true, nil
		}
		if argErr == nil {
			argErr = err
		}
		s.pos = start // backtrack and try the next alternative
	}

	if s.swallowSibling() {
		return nil, true, nil
	}

	if !s.startsCommand(s.pos) {
		return nil, false, nil
	}
	if argErr != nil {
		return nil, false, argErr
	}
	return nil, false, s.errorf(start, "incomplete command")
}

// commandArgs parses the argument list following a matched command name:
// an optional discarded [options] block, then the required groups.
func (s *scanner) commandArgs(cmd command) (Entry, *ParseError) {
	if err := s.skipOptions(); err != nil {
		return nil, err
	}

	if !cmd.definition {
		id, err := s.parseGroup()
		if err != nil {
			return nil, err
		}
		return Reference{ID: id, Flags: cmd.flags}, nil
	}

	id, err := s.parseGroup()
	if err != nil {
		return nil, err
	}
	short, err := s.parseGroup()
	if err != nil {
		return nil, err
	}
	long, err := s.parseGroup()
	if err != nil {
		return nil, err
	}
	return Definition{ID: id, Short: short, Long: long}, nil
}

// swallowSibling consumes the reference stem followed by one or more
// ASCII letters. Nothing after the name is consumed: a brace group
// trailing a swallowed command stays literal text.
func (s *scanner) swallowSibling() bool {
	if !strings.HasPrefix(s.input[s.pos:], referenceStem) {
		return false
	}
	i := s.pos + len(referenceStem)
	j := i
	for j < len(s.input) && isLetter(s.input[j]) {
		j++
	}
	if j == i {
		return false
	}
	s.pos = j
	return true
}

// literalRun consumes the longest run of characters that does not begin
// a recognized command name. matchCommand has already failed here, so
// the run is never empty.
func (s *scanner) literalRun() string {
	start := s.pos
	for s.pos < len(s.input) && !s.startsCommand(s.pos) {
		s.pos++
	}
	return s.input[start:s.pos]
}

func (s *scanner) startsCommand(at int) bool {
	if s.input[at] != '\\' {
		return false
	}
	rest := s.input[at:]
	for _, prefix := range commandPrefixes {
		if strings.HasPrefix(rest, prefix) {
			return true
		}
	}
	return false
}

// parseGroup parses a balanced '{' content '}' group and returns its
// content with the outermost braces stripped. Content is a possibly
// empty mix of text runs and nested groups; nested groups are captured
// recursively and kept verbatim, braces included.
func (s *scanner) parseGroup() (string, *ParseError) {
	if s.eof() || s.input[s.pos] != '{' {
		return "", s.errorf(s.pos, "expected '{'")
	}
	open := s.pos
	s.pos++

	var content strings.Builder
	for {
		if s.eof() {
			return "", s.errorf(open, "unterminated group")
		}
		switch s.input[s.pos] {
		case '}':
			s.pos++
			return content.String(), nil
		case '{':
			inner, err := s.parseGroup()
			if err != nil {
				return "", err
			}
			content.WriteByte('{')
			content.WriteString(inner)
			content.WriteByte('}')
		default:
			start := s.pos
			for s.pos < len(s.input) && s.input[s.pos] != '{' && s.input[s.pos] != '}' {
				s.pos++
			}
			content.WriteString(s.input[start:s.pos])
		}
	}
}

// skipOptions discards a '[' content ']' block if one starts here.
func (s *scanner) skipOptions() *ParseError {
	if s.eof() || s.input[s.pos] != '[' {
		return nil
	}
	open := s.pos
	for i := s.pos + 1; i < len(s.input); i++ {
		if s.input[i] == ']' {
			s.pos = i + 1
			return nil
		}
	}
	return s.errorf(open, "unterminated option block")
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// position converts a byte offset into a 1-based line and column.
func position(input string, offset int) (line, col int) {
	if offset > len(input) {
		offset = len(input)
	}
	line = 1
	col = 1
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
