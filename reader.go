package csvkit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

// Reader tokenizes CSV data one physical line at a time.
type Reader struct {
	src *bufio.Reader

	// Config controls tokenizing. RowHandler and UserData are ignored by Read.
	Config Config
	// FieldsPerRecord, when positive, requires every record to contain exactly this many fields.
	FieldsPerRecord int

	finished bool
	line     int
}

// NewReader creates a Reader that consumes CSV data from r, panicking if r is nil.
func NewReader(r io.Reader, cfg Config) *Reader {
	if r == nil {
		panic("csvkit: reader source cannot be nil")
	}

	return &Reader{
		src:    bufio.NewReaderSize(r, defaultBufferSize),
		Config: cfg,
	}
}

// Line reports the 1-based number of the last line consumed by Read.
func (r *Reader) Line() int {
	if r == nil {
		return 0
	}
	return r.line
}

// Read parses the next line from the underlying stream. io.EOF signals that no more records
// remain. On ErrFieldCount the offending record is still returned.
func (r *Reader) Read() ([]string, error) {
	if r == nil || r.src == nil || r.finished {
		return nil, io.EOF
	}

	text, err := r.src.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.finished = true
			return nil, err
		}
		r.finished = true
		// A final line without a terminator is still a record.
		if len(text) == 0 {
			return nil, io.EOF
		}
	}
	r.line++

	record, column, perr := splitLine(trimLineEnding(text), &r.Config)
	if perr != nil {
		return nil, r.wrapError(column, perr)
	}
	if r.FieldsPerRecord > 0 && len(record) != r.FieldsPerRecord {
		return record, r.wrapError(0, ErrFieldCount)
	}
	return record, nil
}

// ReadAll exhausts the reader, repeatedly calling Read to collect records until io.EOF
// and returning the accumulated records slice plus the first non-EOF error encountered.
func (r *Reader) ReadAll() (records [][]string, err error) {
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// wrapError attaches the current line and supplied column to err, producing a *ParseError.
func (r *Reader) wrapError(column int, err error) error {
	return &ParseError{Line: r.line, Column: column, Err: err}
}

// ParseReader reads src line by line and hands every row to cfg.RowHandler. It stops at the
// first line that fails to parse and returns that error.
func ParseReader(src io.Reader, cfg Config) error {
	if src == nil || cfg.RowHandler == nil {
		return ErrNilInput
	}

	log := cfg.logger()
	r := NewReader(src, cfg)
	for row := 0; ; row++ {
		columns, err := r.Read()
		if err == io.EOF {
			log.Debug("csv parse finished", zap.Int("rows", row))
			return nil
		}
		if err != nil {
			log.Error("failed to parse csv line", zap.Int("line", r.Line()), zap.Error(err))
			return err
		}
		cfg.RowHandler(row, columns, cfg.UserData)
	}
}

// ParseFile opens path and parses it with ParseReader. The file is closed before returning.
func ParseFile(path string, cfg Config) error {
	if path == "" || cfg.RowHandler == nil {
		return ErrNilInput
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("csvkit: open %s: %w", path, err)
	}
	defer f.Close()

	cfg.Logger = cfg.logger().With(zap.String("path", path))
	return ParseReader(f, cfg)
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
