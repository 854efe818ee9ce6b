package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"#", "NAME", "COMMAND"},
		{"1", "Doom", "doom"},
		{"12", "Top", "top -b"},
	}
	got := Format(rows, []Alignment{AlignRight})
	want := []string{
		" #  NAME  COMMAND",
		" 1  Doom  doom",
		"12  Top   top -b",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d mismatch:\nexpected %q\nactual   %q", i, want[i], got[i])
		}
	}
}

func TestFormatCountsDisplayWidth(t *testing.T) {
	rows := [][]string{
		{"名前", "x"},
		{"ab", "y"},
	}
	got := Format(rows, nil)
	if got[0] != "名前  x" {
		t.Fatalf("unexpected wide-rune row: %q", got[0])
	}
	if got[1] != "ab    y" {
		t.Fatalf("expected padding to display width, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if out := Format(nil, nil); out != nil {
		t.Fatalf("expected nil for empty input, got %v", out)
	}
}
