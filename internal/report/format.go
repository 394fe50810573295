// Package report renders the outgoing report text.
package report

import (
	"fmt"
	"strings"

	"convreport/internal/model"
)

const (
	divider      = "----------------------------------------"
	noTranscript = "(no transcript)"
	indent       = "    "
)

// Format renders the selected conversations as one plain-text block. The
// whole result travels as a single opaque message field; the provider
// template does no per-field rendering.
func Format(convs []model.Conversation, mode model.Mode, generated string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Conversation report (%s) - last 7 days - generated %s\n", mode, generated)

	for _, c := range convs {
		b.WriteString("\n")
		b.WriteString(divider)
		b.WriteString("\n")
		fmt.Fprintf(&b, "Conversation %s\n", c.ID)
		fmt.Fprintf(&b, "Time: %s\n", c.Timestamp)
		fmt.Fprintf(&b, "IP: %s (%s)\n", c.IP, countryLabel(c.Country))
		fmt.Fprintf(&b, "Languages: %s\n", c.Languages)
		b.WriteString("Transcript:\n")
		b.WriteString(indentBlock(c.Transcript))
	}
	return b.String()
}

func countryLabel(country string) string {
	if country == "" {
		return "unknown"
	}
	return country
}

// indentBlock re-indents every transcript line, so multi-line transcripts
// stay visually separate from the field labels around them.
func indentBlock(transcript string) string {
	if strings.TrimSpace(transcript) == "" {
		return indent + noTranscript + "\n"
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(transcript, "\n"), "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
