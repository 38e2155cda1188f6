package csvkit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	errNilWriter      = errors.New("csvkit: writer is nil")
	errWriterNoTarget = errors.New("csvkit: writer destination cannot be nil")
)

// Writer emits rows in a form ParseLine reads back with the same delimiter and quote byte. Fields
// holding a line break are rejected with ErrLineBreak, since every row must fit on one line.
type Writer struct {
	dst *bufio.Writer

	// Comma is the field delimiter. Zero means ','.
	Comma byte
	// Quote is the quote character. Zero means '"'.
	Quote byte
	// UseCRLF terminates rows with \r\n instead of \n.
	UseCRLF bool
	// AlwaysQuote quotes every field.
	AlwaysQuote bool
	// NoQuotes writes every field verbatim, for readers with QuotedFields unset. It overrides
	// AlwaysQuote. A field holding the delimiter is rejected with ErrUnquotable.
	NoQuotes bool

	err error
}

// NewWriter creates a Writer with ',' and '"' that buffers output to w.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:   bufio.NewWriterSize(w, defaultBufferSize),
		Comma: defaultDelimiter,
		Quote: defaultQuote,
	}
}

// NewConfigWriter creates a Writer whose output reads back under cfg. With cfg.QuotedFields unset
// fields are written verbatim.
func NewConfigWriter(w io.Writer, cfg Config) *Writer {
	cw := NewWriter(w)
	cw.Comma = cfg.delimiter()
	cw.Quote = cfg.quote()
	cw.NoQuotes = !cfg.QuotedFields
	return cw
}

// Reset points the writer at dst, keeping its settings and clearing any stored error.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.err = nil
}

// Write emits a single row followed by the configured line ending. A row holding a field that
// cannot be read back is rejected before anything is written, and the writer stays usable.
func (w *Writer) Write(row []string) error {
	if err := w.check(); err != nil {
		return err
	}

	cfg := Config{Delimiter: w.Comma, Quote: w.Quote}
	comma, quote := cfg.delimiter(), cfg.quote()
	if err := w.validate(row, comma); err != nil {
		return err
	}

	switch {
	case len(row) == 1 && row[0] == "" && w.NoQuotes:
		// Unquoted, the best available is an empty line, which reads back as zero columns.
	case len(row) == 1 && row[0] == "":
		// A bare empty line reads back as zero columns.
		_, err := w.dst.Write([]byte{quote, quote})
		w.fail(err)
	default:
		for i, field := range row {
			if i > 0 {
				w.fail(w.dst.WriteByte(comma))
			}
			w.writeField(field, comma, quote)
		}
	}
	if w.UseCRLF {
		_, err := w.dst.WriteString("\r\n")
		w.fail(err)
	} else {
		w.fail(w.dst.WriteByte('\n'))
	}
	return w.err
}

// WriteAll writes multiple rows, stopping at the first error.
func (w *Writer) WriteAll(rows [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.check(); err != nil {
		return err
	}
	w.fail(w.dst.Flush())
	return w.err
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

func (w *Writer) check() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	return w.err
}

func (w *Writer) validate(row []string, comma byte) error {
	for i, field := range row {
		if strings.ContainsAny(field, "\r\n") {
			return fmt.Errorf("%w: field %d", ErrLineBreak, i)
		}
		if w.NoQuotes && strings.IndexByte(field, comma) >= 0 {
			return fmt.Errorf("%w: field %d", ErrUnquotable, i)
		}
	}
	return nil
}

// fail records the first non-nil error; later writes become no-ops.
func (w *Writer) fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *Writer) writeField(field string, comma, quote byte) {
	if w.err != nil {
		return
	}
	if w.NoQuotes || (!w.AlwaysQuote && !fieldNeedsQuote(field, comma, quote)) {
		_, err := w.dst.WriteString(field)
		w.fail(err)
		return
	}

	q := string(quote)
	w.fail(w.dst.WriteByte(quote))
	_, err := w.dst.WriteString(strings.ReplaceAll(field, q, q+q))
	w.fail(err)
	w.fail(w.dst.WriteByte(quote))
}

// fieldNeedsQuote reports whether field would not survive a round trip unquoted: it contains the
// delimiter or the quote byte, or it has surrounding whitespace.
func fieldNeedsQuote(field string, comma, quote byte) bool {
	if field == "" {
		return false
	}
	if isSpace(field[0]) || isSpace(field[len(field)-1]) {
		return true
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case quote, comma:
			return true
		}
	}
	return false
}
