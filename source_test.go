package main

import (
	"testing"
	"time"
)

func TestDefaultSourceName(t *testing.T) {
	// 2024-03-11 is a Monday; every day of that week maps back to it.
	monday := time.Date(2024, time.March, 11, 14, 30, 0, 0, time.UTC)
	want := "Automated for week of 2024-03-11"

	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		if got := defaultSourceName(day); got != want {
			t.Errorf("defaultSourceName(%s %s) = %q, want %q",
				day.Weekday(), day.Format("2006-01-02"), got, want)
		}
	}
}

func TestMondayOfWeek(t *testing.T) {
	tests := []struct {
		day  time.Time
		want string
	}{
		{time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), "2024-03-11"},  // Monday maps to itself
		{time.Date(2024, time.March, 17, 23, 0, 0, 0, time.UTC), "2024-03-11"}, // Sunday reaches back six days
		{time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC), "2024-03-18"},  // next week starts over
		{time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), "2024-01-01"}, // across a year boundary
	}

	for _, tt := range tests {
		if got := mondayOfWeek(tt.day).Format("2006-01-02"); got != tt.want {
			t.Errorf("mondayOfWeek(%s) = %s, want %s", tt.day.Format("2006-01-02"), got, tt.want)
		}
	}
}
