package csvkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	quoting := DefaultConfig()
	trimming := Config{Delimiter: ',', TrimSpace: true}
	quotingTrim := DefaultConfig()
	quotingTrim.TrimSpace = true

	tests := []struct {
		name string
		line string
		cfg  Config
		want []string
	}{
		{name: "plain", line: "a,b,c", cfg: Config{Delimiter: ','}, want: []string{"a", "b", "c"}},
		{name: "zeroConfig", line: "x,y", cfg: Config{}, want: []string{"x", "y"}},
		{name: "quotedDelimiter", line: `"a,b",c`, cfg: quoting, want: []string{"a,b", "c"}},
		{name: "escapedQuote", line: `"say ""hi""",ok`, cfg: quoting, want: []string{`say "hi"`, "ok"}},
		{name: "onlyEscapedQuote", line: `""""`, cfg: quoting, want: []string{`"`}},
		{name: "emptyQuoted", line: `"",b`, cfg: quoting, want: []string{"", "b"}},
		{name: "trim", line: " a , b ", cfg: trimming, want: []string{"a", "b"}},
		{name: "trimBeforeQuote", line: `  "x" , y`, cfg: quotingTrim, want: []string{"x", "y"}},
		{name: "trimInsideQuotes", line: `" padded ",z`, cfg: quotingTrim, want: []string{"padded", "z"}},
		{name: "noTrimKeepsSpaces", line: " a , b ", cfg: quoting, want: []string{" a ", " b "}},
		{name: "trailingDelimiter", line: "a,", cfg: quoting, want: []string{"a", ""}},
		{name: "onlyDelimiter", line: ",", cfg: quoting, want: []string{"", ""}},
		{name: "quotingDisabled", line: `"a,b",c`, cfg: Config{Delimiter: ','}, want: []string{`"a`, `b"`, "c"}},
		{name: "doubledQuoteUnquoted", line: `a""b`, cfg: quoting, want: []string{`a"b`}},
		{name: "loneQuoteUnquoted", line: `a"b,c`, cfg: quoting, want: []string{`a"b`, "c"}},
		{name: "textAfterClosingQuote", line: `"ab"cd,e`, cfg: quoting, want: []string{"abcd", "e"}},
		{name: "customDelimiterAndQuote", line: "'x;y';z", cfg: Config{Delimiter: ';', Quote: '\'', QuotedFields: true}, want: []string{"x;y", "z"}},
		{name: "tabDelimiterTrim", line: "a\t\tb", cfg: Config{Delimiter: '\t', TrimSpace: true}, want: []string{"a", "", "b"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLine(tc.line, tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLineEmpty(t *testing.T) {
	t.Parallel()

	got, err := ParseLine("", DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseLineManyColumns(t *testing.T) {
	t.Parallel()

	line := "0"
	for i := 1; i < 50; i++ {
		line += ",x"
	}
	got, err := ParseLine(line, DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, got, 50)
	assert.Equal(t, "0", got[0])
	assert.Equal(t, "x", got[49])
}

func TestParseLineUnbalancedQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		column int
	}{
		{name: "firstField", line: `"unterminated,field`, column: 1},
		{name: "laterField", line: `a,"b`, column: 3},
		{name: "escapedQuoteAtEnd", line: `"abc""`, column: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLine(tc.line, DefaultConfig())
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrUnbalancedQuotes)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, 1, perr.Line)
			assert.Equal(t, tc.column, perr.Column)
		})
	}
}

func TestParseLineQuotesIgnoredWhenDisabled(t *testing.T) {
	t.Parallel()

	got, err := ParseLine(`"unterminated,field`, Config{Delimiter: ','})
	require.NoError(t, err)
	assert.Equal(t, []string{`"unterminated`, "field"}, got)
}
