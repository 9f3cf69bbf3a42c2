package common

import (
	"testing"
	"time"
)

func TestUUIDint64Unique(t *testing.T) {
	seen := make(map[int64]bool)
	var prev int64
	for i := 0; i < 1000; i++ {
		id := UUIDint64()
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		if id < prev {
			t.Fatalf("id %d not monotonic (prev %d)", id, prev)
		}
		seen[id] = true
		prev = id
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-06-10", time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)},
		{"06/10/2024", time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)},
	}
	for _, c := range cases {
		got, err := ParseDate(c.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseDate("not a date"); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestTruncateDate(t *testing.T) {
	in := time.Date(2024, 6, 10, 18, 30, 12, 999, time.Local)
	got := TruncateDate(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("TruncateDate left time-of-day: %v", got)
	}
	if !DateEqual(in, got) {
		t.Error("TruncateDate changed the calendar day")
	}
}
