package views

import "testing"

func TestWordCount(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"a b  c", 3},
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"line\nbreaks\tand tabs", 4},
	}
	for _, tt := range tests {
		if got := WordCount(tt.content); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}

func TestDisplayScore(t *testing.T) {
	tests := []struct {
		raw  float64
		want int
	}{
		{95, 95},
		{0, 80},
		{-10, 80},
		{80, 80},
		{79.9, 80},
		{92, 92},
	}
	for _, tt := range tests {
		if got := DisplayScore(tt.raw); got != tt.want {
			t.Errorf("DisplayScore(%v) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseCreatedAt(t *testing.T) {
	if _, ok := ParseCreatedAt("2024-03-15 10:30:00"); !ok {
		t.Error("sqlite format should parse")
	}
	if _, ok := ParseCreatedAt("2024-03-15T10:30:00Z"); !ok {
		t.Error("RFC3339 should parse")
	}
	if _, ok := ParseCreatedAt("yesterday"); ok {
		t.Error("junk should not parse")
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-03-15 10:30:00"); got != "Mar 15, 2024" {
		t.Errorf("FormatDate = %q, want %q", got, "Mar 15, 2024")
	}
	if got := FormatDate("2024-03-15T10:30:00Z"); got != "Mar 15, 2024" {
		t.Errorf("FormatDate RFC3339 = %q, want %q", got, "Mar 15, 2024")
	}
	if got := FormatDate("not a date"); got != "not a date" {
		t.Errorf("FormatDate passthrough = %q, want original", got)
	}
}

func TestAvatarLetter(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"eco blog", "E"},
		{"Tech Site", "T"},
		{"", "?"},
		{"ñandú", "Ñ"},
	}
	for _, tt := range tests {
		if got := AvatarLetter(tt.name); got != tt.want {
			t.Errorf("AvatarLetter(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}
	got := Truncate("a very long description that keeps going", 10)
	if got != "a very lon..." {
		t.Errorf("Truncate = %q", got)
	}
}

func TestCMSBadgeClass(t *testing.T) {
	if got := CMSBadgeClass("WordPress"); got != "cms-badge cms-wordpress" {
		t.Errorf("CMSBadgeClass = %q", got)
	}
}
