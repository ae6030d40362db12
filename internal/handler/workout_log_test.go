package handler

import (
	"testing"
	"time"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return d
}

func TestComputeStreak(t *testing.T) {
	now := day(t, "2026-09-01")

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no logs", nil, 0},
		{"single log today", []string{"2026-09-01"}, 1},
		{"three consecutive days", []string{"2026-09-01", "2026-08-31", "2026-08-30"}, 3},
		{"gap breaks streak", []string{"2026-09-01", "2026-08-29", "2026-08-28"}, 1},
		{"old log only", []string{"2026-08-20"}, 0},
		{"streak counts until first gap", []string{"2026-09-01", "2026-08-31", "2026-08-28", "2026-08-27"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dates []time.Time
			for _, d := range tt.dates {
				dates = append(dates, day(t, d))
			}

			if got := computeStreak(dates, now); got != tt.want {
				t.Errorf("computeStreak(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		streak int
		want   string
	}{
		{0, "None"},
		{6, "None"},
		{7, "🌟 7-Day Streak"},
		{13, "🌟 7-Day Streak"},
		{14, "💪 2-Week Strong"},
		{29, "💪 2-Week Strong"},
		{30, "🔥 30-Day Warrior"},
		{100, "🔥 30-Day Warrior"},
	}

	for _, tt := range tests {
		if got := badgeFor(tt.streak); got != tt.want {
			t.Errorf("badgeFor(%d) = %q, want %q", tt.streak, got, tt.want)
		}
	}
}
