package cli

import (
	"testing"
	"time"
)

func TestResolveDayKey(t *testing.T) {
	// Wednesday 2026-09-02
	today := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  string
	}{
		{"today", "2026-09-02"},
		{"tomorrow", "2026-09-03"},
		{"monday", "2026-08-31"},
		{"Mon", "2026-08-31"},
		{"sunday", "2026-09-06"},
		{"FRIDAY", "2026-09-04"},
		{"2026-12-25", "2026-12-25"},
	}

	for _, tt := range tests {
		got, err := resolveDayKey(tt.input, today)
		if err != nil {
			t.Errorf("resolveDayKey(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveDayKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveDayKey_Invalid(t *testing.T) {
	today := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	for _, input := range []string{"", "someday", "2026-13-40", "next week"} {
		if _, err := resolveDayKey(input, today); err == nil {
			t.Errorf("resolveDayKey(%q) should fail", input)
		}
	}
}

func TestDayLabel(t *testing.T) {
	if got := dayLabel("2026-09-02"); got != "Wed Sep 2" {
		t.Errorf("dayLabel = %q, want Wed Sep 2", got)
	}
	if got := dayLabel("garbage"); got != "garbage" {
		t.Errorf("dayLabel should fall back to the raw key, got %q", got)
	}
}
