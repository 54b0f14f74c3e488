package svgdoc

import (
	"fmt"
	"strconv"
)

// Scanner for the "name(arg, arg ...)" lists that SVG transform attributes
// are made of.

type function struct {
	Name string
	Args []float64
}

type scanner struct {
	data  string
	index int
}

// peek returns the next byte without consuming it, or 0 at end of stream
func (s *scanner) peek() byte {
	if s.index < len(s.data) {
		return s.data[s.index]
	}
	return 0
}

// next consumes and returns the next byte, or 0 at end of stream
func (s *scanner) next() byte {
	if s.index < len(s.data) {
		i := s.index
		s.index++
		return s.data[i]
	}
	return 0
}

// whitespace consumes "wsp*" and returns the number of bytes consumed
func (s *scanner) whitespace() int {
	count := 0
	for {
		switch s.peek() {
		case ' ', '\t', '\n', '\r':
			s.next()
			count++
		default:
			return count
		}
	}
}

// commaWhitespace consumes an optional "(wsp+ comma? wsp*) | (comma wsp*)"
func (s *scanner) commaWhitespace() {
	if s.peek() == ',' {
		s.next()
		s.whitespace()
		return
	}
	if s.whitespace() > 0 {
		if s.peek() == ',' {
			s.next()
		}
		s.whitespace()
	}
}

func (s *scanner) number() (float64, error) {
	start := s.index
	if c := s.peek(); c == '+' || c == '-' {
		s.next()
	}
	for {
		c := s.peek()
		if ('0' <= c && c <= '9') || c == '.' || c == 'e' || c == 'E' {
			s.next()
			// sign of an exponent
			if c == 'e' || c == 'E' {
				if next := s.peek(); next == '+' || next == '-' {
					s.next()
				}
			}
			continue
		}
		break
	}
	if s.index == start {
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	return strconv.ParseFloat(s.data[start:s.index], 64)
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func parseFunctions(data string) ([]*function, error) {
	s := &scanner{data: data}
	var functions []*function
	for {
		fn := &function{}
		functions = append(functions, fn)

		// identifier
		s.whitespace()
		c := s.next()
		if !isLetter(c) {
			return functions, fmt.Errorf("identifier must start with a letter, got %q", string(c))
		}
		fn.Name += string(c)
		for {
			c := s.peek()
			if isLetter(c) || ('0' <= c && c <= '9') || c == '_' || c == '-' {
				fn.Name += string(s.next())
			} else {
				break
			}
		}

		s.whitespace()
		if c := s.next(); c != '(' {
			return functions, fmt.Errorf("expected \"(\", got %q", string(c))
		}

		// arguments, possibly none
		s.whitespace()
		oldIndex := s.index
		n, err := s.number()
		if err != nil {
			s.index = oldIndex
		} else {
			fn.Args = append(fn.Args, n)
			for {
				oldIndex = s.index
				s.commaWhitespace()
				n, err = s.number()
				if err != nil {
					s.index = oldIndex
					break
				}
				fn.Args = append(fn.Args, n)
			}
		}

		s.whitespace()
		if c := s.next(); c != ')' {
			return functions, fmt.Errorf("expected \")\", got %q", string(c))
		}
		s.whitespace()

		if s.peek() == 0 {
			return functions, nil
		}
	}
}
