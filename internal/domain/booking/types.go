package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CountsAgainstCapacity reports whether a booking in this status consumes a
// room unit. Only confirmed bookings do; pending and cancelled never reduce
// availability.
func (s Status) CountsAgainstCapacity() bool {
	return s == StatusConfirmed
}
