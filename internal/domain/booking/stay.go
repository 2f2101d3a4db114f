package booking

import (
	"errors"
	"time"
)

var ErrInvalidStayRange = errors.New("check-out date must be after check-in date")

// StayRange is a guest's [checkIn, checkOut) date pair. Check-out day is the
// departure day: a stay ending on the 10th and a stay starting on the 10th
// share no night, so range overlap is half-open throughout.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	if !checkOut.After(checkIn) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps applies the half-open overlap test: two stays overlap iff one
// starts before the other ends and ends after the other starts. Back-to-back
// stays do not overlap.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

// CoveredDates enumerates every calendar day from check-in through check-out
// inclusive. The check-out day is included here because housekeeping still
// holds the room until the departing guest clears it.
func (s StayRange) CoveredDates() []time.Time {
	var dates []time.Time
	for d := s.checkIn; !d.After(s.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
