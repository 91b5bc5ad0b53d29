package attendance

// Stats holds per-status counts for a class over a date range.
type Stats struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
	Tardy   int64 `json:"tardy"`
	Excused int64 `json:"excused"`
}

// Add increments the counter for the given status.
func (s *Stats) Add(status Status) {
	switch status {
	case StatusPresent:
		s.Present++
	case StatusAbsent:
		s.Absent++
	case StatusTardy:
		s.Tardy++
	case StatusExcused:
		s.Excused++
	}
}

// Total returns the sum of the four counted statuses.
func (s *Stats) Total() int64 {
	return s.Present + s.Absent + s.Tardy + s.Excused
}
