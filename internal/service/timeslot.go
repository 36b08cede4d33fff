package service

import (
	"fmt"
	"time"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

// parseClock parses a strict 24-hour "HH:MM" string.
func parseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func parseDate(s string) error {
	_, err := time.Parse(dateLayout, s)
	return err
}

// expandSlots turns one booking into the hour-start labels it occupies:
// a booking at "14:00" for 2 hours blocks "14:00" and "15:00". Labels that
// would land on or past midnight are dropped.
func expandSlots(startTime string, duration int) []string {
	startHour, startMinute, err := parseClock(startTime)
	if err != nil {
		return nil
	}

	slots := make([]string, 0, duration)
	for i := 0; i < duration; i++ {
		slotHour := startHour + i
		if slotHour >= 24 {
			break
		}
		slots = append(slots, formatClock(slotHour, startMinute))
	}

	return slots
}
