package cli

import (
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want []string
	}{
		{name: "matching", row: []string{"#FF0000", "40.00%"}, want: []string{"#FF0000", "40.00%"}},
		{name: "short row is padded", row: []string{"#00FF00"}, want: []string{"#00FF00", ""}},
		{name: "long row is truncated", row: []string{"#0000FF", "1.00%", "extra"}, want: []string{"#0000FF", "1.00%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable([]string{"Colour", "Percent"})
			table.AddRow(tt.row)
			got := table.rows[0]
			if len(got) != len(tt.want) {
				t.Fatalf("row = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("row[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Rank", "Colour", "Percent"})
	table.SetColumnAlignRight(0)
	table.SetColumnAlignRight(2)
	table.AddRow([]string{"1", "#FF0000", "40.00%"})
	table.AddRow([]string{"10", "#0000FF", "5.50%"})

	want := "" +
		"Rank  Colour   Percent\n" +
		"----  -------  -------\n" +
		"   1  #FF0000   40.00%\n" +
		"  10  #0000FF    5.50%\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() with no headers = %q, want empty", got)
	}

	got := NewTable([]string{"Colour"}).Render()
	if got != "Colour\n------\n" {
		t.Errorf("Render() with no rows = %q", got)
	}
}

func TestTableWrapping(t *testing.T) {
	table := NewTable([]string{"Pair", "Note"})
	table.SetColumnMaxWidth(1, 10)
	table.AddRow([]string{"238/239", "duplicate entries in palette"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, separator and 3 wrapped lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	for _, line := range lines[2:] {
		if cell := strings.TrimSpace(line[len("238/239")+2:]); len(cell) > 10 {
			t.Errorf("wrapped cell %q exceeds max width", cell)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "fits", text: "short", width: 10, want: []string{"short"}},
		{name: "word boundary", text: "all colours distinct", width: 11, want: []string{"all colours", "distinct"}},
		{name: "long word split", text: "ABCDEFGHIJ", width: 4, want: []string{"ABCD", "EFGH", "IJ"}},
		{name: "no limit", text: "anything goes", width: 0, want: []string{"anything goes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
