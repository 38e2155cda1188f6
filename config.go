package csvkit

import "go.uber.org/zap"

const (
	defaultDelimiter = ','
	defaultQuote     = '"'
)

// RowHandler receives each parsed row. rowIndex is 0-based and columns is owned by the handler
// once the call returns.
type RowHandler func(rowIndex int, columns []string, userData any)

// Config controls how a line is split into columns. It is read but never modified by the parser.
type Config struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter byte
	// Quote opens and closes quoted fields. Zero means '"'.
	Quote byte
	// QuotedFields enables quoted fields and doubled-quote unescaping.
	QuotedFields bool
	// TrimSpace strips leading and trailing whitespace from every field.
	TrimSpace bool
	// RowHandler is invoked by ParseFile and ParseReader for every parsed row.
	RowHandler RowHandler
	// UserData is passed through to RowHandler untouched.
	UserData any
	// Logger receives parse diagnostics. Nil disables them.
	Logger *zap.Logger
}

// DefaultConfig returns a comma separated configuration with '"' quoting enabled and trimming
// disabled.
func DefaultConfig() Config {
	return Config{
		Delimiter:    defaultDelimiter,
		Quote:        defaultQuote,
		QuotedFields: true,
	}
}

func (c *Config) delimiter() byte {
	if c.Delimiter == 0 {
		return defaultDelimiter
	}
	return c.Delimiter
}

func (c *Config) quote() byte {
	if c.Quote == 0 {
		return defaultQuote
	}
	return c.Quote
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
