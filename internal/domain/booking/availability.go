package booking

import (
	"sort"
	"time"
)

// AvailableRooms is the remaining inventory for a package: the room type's
// total units minus the confirmed bookings counted by the caller's query.
// The result may be negative when out-of-band edits have overbooked a range;
// callers treat anything <= 0 as sold out.
func AvailableRooms(totalRooms, confirmedCount int) int {
	return totalRooms - confirmedCount
}

// FullyBookedDates returns the calendar days on which the number of
// confirmed stays covering the day has reached totalRooms, as sorted,
// duplicate-free ISO date strings. Days covered by fewer stays than the
// inventory still have capacity and are not reported.
func FullyBookedDates(stays []StayRange, totalRooms int) []string {
	if totalRooms < 1 {
		return nil
	}

	counts := make(map[string]int)
	for _, stay := range stays {
		for _, d := range stay.CoveredDates() {
			counts[d.Format(time.DateOnly)]++
		}
	}

	var full []string
	for date, n := range counts {
		if n >= totalRooms {
			full = append(full, date)
		}
	}
	sort.Strings(full)
	return full
}
