package listing

import (
	"fmt"
	"time"
)

// Remaining is a countdown split into whole days, hours and minutes
type Remaining struct {
	Ended   bool
	Days    uint64
	Hours   uint64
	Minutes uint64
}

// TimeRemaining computes the countdown from now to end, both in ns since epoch
func TimeRemaining(end, now uint64) Remaining {
	if now >= end {
		return Remaining{Ended: true}
	}
	delta := end - now
	day := uint64(24 * time.Hour)
	hour := uint64(time.Hour)
	minute := uint64(time.Minute)
	return Remaining{
		Days:    delta / day,
		Hours:   delta % day / hour,
		Minutes: delta % hour / minute,
	}
}

func (r Remaining) String() string {
	switch {
	case r.Ended:
		return "Ended"
	case r.Days > 0:
		return fmt.Sprintf("%dd %dh %dm", r.Days, r.Hours, r.Minutes)
	case r.Hours > 0:
		return fmt.Sprintf("%dh %dm", r.Hours, r.Minutes)
	default:
		return fmt.Sprintf("%dm", r.Minutes)
	}
}

func (r Remaining) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
