package fetch

import "testing"

func TestDetailLogDue(t *testing.T) {
	tests := []struct {
		name  string
		done  int
		total int
		want  bool
	}{
		{name: "first file", done: 1, total: 100, want: true},
		{name: "last file", done: 100, total: 100, want: true},
		{name: "interval boundary", done: 25, total: 100, want: true},
		{name: "between boundaries", done: 26, total: 100, want: false},
		{name: "mid run", done: 7, total: 100, want: false},
		{name: "single file run", done: 1, total: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detailLogDue(tt.done, tt.total); got != tt.want {
				t.Errorf("detailLogDue(%d, %d) = %v, want %v", tt.done, tt.total, got, tt.want)
			}
		})
	}
}

// Every copy of a short run must surface a log line: with fewer files
// than the interval, the first and last rules still bound the gap.
func TestDetailLogDueShortRunEndpoints(t *testing.T) {
	total := 10
	logged := 0
	for done := 1; done <= total; done++ {
		if detailLogDue(done, total) {
			logged++
		}
	}
	if logged < 2 {
		t.Errorf("short run logged %d lines, want at least first and last", logged)
	}
	if !detailLogDue(1, total) || !detailLogDue(total, total) {
		t.Error("first and last files must always log")
	}
}
