// Package csvparse implements the conversation log parser.
//
// The log is RFC4180-style CSV: fields separated by commas, optionally
// wrapped in double quotes. Inside a quoted region commas and line breaks
// are literal content and a doubled quote stands for one literal quote.
// The parser is a character state machine with two states, outside-quotes
// and inside-quotes, rather than encoding/csv: transcripts appended by the
// chatbot occasionally end mid-quote, and such input must still yield
// whatever was accumulated instead of an error.
package csvparse

import "strings"

// Parse converts raw CSV text into an ordered sequence of records, each an
// ordered sequence of string fields. No type coercion is performed.
//
// A record terminator is \n or \r\n outside quotes. The final record is
// flushed at end-of-input even without a trailing line break, but a trailing
// line break does not produce an empty record.
func Parse(raw string) [][]string {
	var (
		records  [][]string
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	flushField := func() {
		fields = append(fields, field.String())
		field.Reset()
	}
	flushRecord := func() {
		flushField()
		records = append(records, fields)
		fields = nil
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			flushField()
		case c == '\r' && !inQuotes && i+1 < len(runes) && runes[i+1] == '\n':
			// collapsed into the \n that follows
		case c == '\n' && !inQuotes:
			flushRecord()
		default:
			field.WriteRune(c)
		}
	}

	// Flush the last record, including an unterminated quoted field.
	if field.Len() > 0 || len(fields) > 0 {
		flushRecord()
	}
	return records
}
