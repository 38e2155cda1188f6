package csvkit

import "strings"

const initialColumns = 10

// ParseLine splits a single line (without its terminator) into columns according to cfg.
// A line that ends inside a quoted field yields a *ParseError wrapping ErrUnbalancedQuotes and no
// columns. An empty line yields zero columns.
func ParseLine(line string, cfg Config) ([]string, error) {
	columns, column, err := splitLine(line, &cfg)
	if err != nil {
		return nil, &ParseError{Line: 1, Column: column, Err: err}
	}
	return columns, nil
}

// splitLine tokenizes line and, on failure, reports the 1-based column of the offending quote.
func splitLine(line string, cfg *Config) ([]string, int, error) {
	if len(line) == 0 {
		return nil, 0, nil
	}

	delim := cfg.delimiter()
	quote := cfg.quote()
	quoted := cfg.QuotedFields

	columns := make([]string, 0, initialColumns)
	field := make([]byte, 0, len(line))
	pos := 0

	for {
		// Field start.
		field = field[:0]
		if cfg.TrimSpace {
			for pos < len(line) && line[pos] != delim && isSpace(line[pos]) {
				pos++
			}
		}

		if quoted && pos < len(line) && line[pos] == quote {
			opening := pos
			pos++
			closed := false
			for pos < len(line) {
				c := line[pos]
				if c != quote {
					field = append(field, c)
					pos++
					continue
				}
				if pos+1 < len(line) && line[pos+1] == quote {
					field = append(field, quote)
					pos += 2
					continue
				}
				pos++
				closed = true
				break
			}
			if !closed {
				return nil, opening + 1, ErrUnbalancedQuotes
			}
		}

		// Unquoted field, or whatever follows a closing quote.
		for pos < len(line) && line[pos] != delim {
			c := line[pos]
			if quoted && c == quote && pos+1 < len(line) && line[pos+1] == quote {
				field = append(field, quote)
				pos += 2
				continue
			}
			field = append(field, c)
			pos++
		}

		value := string(field)
		if cfg.TrimSpace {
			value = strings.TrimFunc(value, func(r rune) bool {
				return r < 0x80 && isSpace(byte(r))
			})
		}
		columns = append(columns, value)

		if pos >= len(line) {
			return columns, 0, nil
		}
		// Skip the delimiter; a delimiter at the very end leaves one empty trailing field.
		pos++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
