package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the period p that contains d.
func NewRange(d Date, p Period) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// Contains reports whether day is within the range.
func (r Range) Contains(day Date) bool { return !day.Before(r.From) && !day.After(r.To) }
