package slotlabel

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	got, err := Resolve("2026-03-14", "10:00 AM - 11:00 AM")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveAfternoon(t *testing.T) {
	got, err := Resolve("2026-03-14", "2:30 PM - 3:30 PM")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Hour() != 14 || got.Minute() != 30 {
		t.Fatalf("got %v, want 14:30", got)
	}
}

func TestResolveNoEndTime(t *testing.T) {
	// A bare start time is acceptable, the separator is optional.
	got, err := Resolve("2026-01-02", "9:00 AM")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Hour() != 9 {
		t.Fatalf("got hour %d, want 9", got.Hour())
	}
}

func TestResolveBadDate(t *testing.T) {
	if _, err := Resolve("14/03/2026", "10:00 AM - 11:00 AM"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestResolveBadLabel(t *testing.T) {
	for _, label := range []string{"", "morning", "25:00 AM - 26:00 AM"} {
		if _, err := Resolve("2026-03-14", label); err == nil {
			t.Fatalf("expected error for label %q", label)
		}
	}
}
