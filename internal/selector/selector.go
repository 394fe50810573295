// Package selector chooses which conversations a report covers.
package selector

import (
	"sort"
	"strings"
	"time"

	"convreport/internal/model"
)

// Window is the trailing period a report covers.
const Window = 7 * 24 * time.Hour

const (
	headerID  = "conversationId"
	minFields = 5
)

// Timestamp layouts accepted in the log, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a raw timestamp field. The second return value
// reports whether any of the accepted layouts matched.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Records converts parsed CSV rows into conversations. The header row and
// rows with fewer than five fields are dropped; the second return value is
// the dropped-row count. The transcript column is optional.
func Records(rows [][]string) ([]model.Conversation, int) {
	var (
		convs   []model.Conversation
		dropped int
	)
	for _, row := range rows {
		if len(row) > 0 && row[0] == headerID {
			continue
		}
		if len(row) < minFields {
			dropped++
			continue
		}
		c := model.Conversation{
			ID:        row[0],
			Timestamp: row[1],
			IP:        row[2],
			Country:   row[3],
			Languages: row[4],
		}
		if len(row) > minFields {
			c.Transcript = row[5]
		}
		convs = append(convs, c)
	}
	return convs, dropped
}

// Select applies the mode policy at the given instant.
//
// DAILY first checks for any conversation whose timestamp field begins with
// today's calendar date; without one the selection is empty and the run has
// nothing to do. RESET skips that gate. Either way the result is every
// conversation whose parsed timestamp lies within the trailing window,
// newest first. Conversations whose timestamp does not parse count neither
// as today's activity nor as part of the window.
func Select(convs []model.Conversation, mode model.Mode, now time.Time) []model.Conversation {
	if mode == model.ModeDaily && !anyToday(convs, now) {
		return nil
	}

	cutoff := now.Add(-Window)

	type timed struct {
		conv model.Conversation
		at   time.Time
	}
	var selected []timed
	for _, c := range convs {
		t, ok := ParseTimestamp(c.Timestamp)
		if !ok || t.Before(cutoff) {
			continue
		}
		selected = append(selected, timed{conv: c, at: t})
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].at.After(selected[j].at)
	})

	out := make([]model.Conversation, 0, len(selected))
	for _, s := range selected {
		out = append(out, s.conv)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func anyToday(convs []model.Conversation, now time.Time) bool {
	today := now.Format("2006-01-02")
	for _, c := range convs {
		if _, ok := ParseTimestamp(c.Timestamp); !ok {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(c.Timestamp), today) {
			return true
		}
	}
	return false
}
