package main

import (
	"fmt"
	"time"
)

// mondayOfWeek returns the Monday on or before t. Go counts weekdays from
// Sunday, so the offset is shifted by six.
func mondayOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// defaultSourceName generates a source label for the week containing t.
func defaultSourceName(t time.Time) string {
	return fmt.Sprintf("Automated for week of %s", mondayOfWeek(t).Format("2006-01-02"))
}
