// Package model defines the domain types used across the application.
package model

import (
	"fmt"
	"strings"
)

// Conversation is one logged chatbot conversation, straight from the CSV.
// All fields are kept as raw strings; the timestamp is parsed only during
// selection, so rows with odd timestamps stay inspectable.
type Conversation struct {
	ID         string
	Timestamp  string
	IP         string
	Country    string
	Languages  string
	Transcript string
}

// Mode is the selection policy for a run.
type Mode string

// Supported modes.
const (
	// ModeDaily reports the trailing week, but only on days with activity.
	ModeDaily Mode = "DAILY"
	// ModeReset reports the trailing week unconditionally.
	ModeReset Mode = "RESET"
)

// ParseMode parses a mode string, case-insensitively.
// An empty string defaults to ModeDaily.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(ModeDaily):
		return ModeDaily, nil
	case string(ModeReset):
		return ModeReset, nil
	}
	return "", fmt.Errorf("unknown mode %q (want DAILY or RESET)", s)
}
