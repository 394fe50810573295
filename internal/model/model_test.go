package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Mode
		wantErr bool
	}{
		{name: "daily", in: "DAILY", want: ModeDaily},
		{name: "reset", in: "RESET", want: ModeReset},
		{name: "lowercase", in: "reset", want: ModeReset},
		{name: "whitespace", in: " daily ", want: ModeDaily},
		{name: "empty defaults to daily", in: "", want: ModeDaily},
		{name: "unknown", in: "WEEKLY", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseMode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
