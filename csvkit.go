// # csvkit: configurable CSV line tokenizing and a fixed-capacity string dictionary
//
// csvkit splits delimited text one line at a time under a caller supplied Config and drives
// whole files through a row callback. The sibling dict package provides a string to string
// hash table on chained buckets.
//
// # Features
//
// - Line tokenizer with a custom delimiter and quote byte, optional quoted fields, doubled-quote
// unescaping, and optional whitespace trimming.
// - Streaming Reader over any io.Reader plus ParseFile/ParseReader for callback-driven parsing.
// - AddColumn and DropColumn helpers that edit parsed rows in place.
// - Buffered Writer with configurable delimiters, newline policy, and forced quoting.
// - Structured error reporting via `ParseError`, `ColumnError`, `ErrNilInput`,
// `ErrUnbalancedQuotes`, `ErrColumnOutOfRange`, and `ErrFieldCount`.
//
// # Getting Started
//
//	cfg := csvkit.DefaultConfig()
//	cfg.TrimSpace = true
//	cfg.RowHandler = func(row int, columns []string, _ any) {
//		fmt.Println(row, columns)
//	}
//	if err := csvkit.ParseFile("data.csv", cfg); err != nil {
//		// handle error
//	}
//
// Every call is synchronous and holds no state outside its arguments, so independent parses may
// run on separate goroutines.
package csvkit
