package csvparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want [][]string
	}{
		{
			name: "simple record",
			raw:  "a,b,c",
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "two records with trailing newline",
			raw:  "a,b\nc,d\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "quoted comma stays in one field",
			raw:  `a,"b,c",d`,
			want: [][]string{{"a", "b,c", "d"}},
		},
		{
			name: "doubled quote becomes literal quote",
			raw:  `"he said ""hi"""`,
			want: [][]string{{`he said "hi"`}},
		},
		{
			name: "newline inside quotes keeps one record",
			raw:  "id1,\"line1\nline2\",ip",
			want: [][]string{{"id1", "line1\nline2", "ip"}},
		},
		{
			name: "crlf terminates records",
			raw:  "a,b\r\nc,d\r\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "crlf inside quotes is literal",
			raw:  "a,\"x\r\ny\",b",
			want: [][]string{{"a", "x\r\ny", "b"}},
		},
		{
			name: "last record flushed without trailing newline",
			raw:  "a,b\nc,d",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "unterminated quote flushes accumulated content",
			raw:  `a,"unterminated`,
			want: [][]string{{"a", "unterminated"}},
		},
		{
			name: "empty fields preserved",
			raw:  "a,,c\n",
			want: [][]string{{"a", "", "c"}},
		},
		{
			name: "trailing empty field",
			raw:  "a,b,\n",
			want: [][]string{{"a", "b", ""}},
		},
		{
			name: "blank line mid-file yields one-field empty record",
			raw:  "a\n\nb",
			want: [][]string{{"a"}, {""}, {"b"}},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "only a newline",
			raw:  "\n",
			want: [][]string{{""}},
		},
		{
			name: "quoted field with everything at once",
			raw:  "id,\"a, \"\"b\"\"\nc\",tail\n",
			want: [][]string{{"id", "a, \"b\"\nc", "tail"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
