package domain

import (
	"fmt"
	"time"
)

// DateRange represents a half-open interval [Start, End) of calendar instants.
// Booking stays are day-granular (check-in date inclusive, check-out date
// exclusive), so a range ending on a given day and a range starting on that
// same day do not overlap: a same-day turnover is allowed.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange constructs a range from two instants
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: start, End: end}
}

// ParseDateRange parses a range from two YYYY-MM-DD strings
func ParseDateRange(from, to string) (DateRange, error) {
	start, err := time.Parse(DateFormat, from)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %q: %w", from, err)
	}
	end, err := time.Parse(DateFormat, to)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %q: %w", to, err)
	}
	return DateRange{Start: start, End: end}, nil
}

// IsValid returns true if the range is non-degenerate (Start strictly before End).
// Entry points must reject invalid ranges before any overlap computation;
// Overlaps and Contains assume their inputs are already valid.
func (r DateRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Overlaps returns true if the two half-open ranges intersect.
// Strict comparisons: ranges that merely share a boundary do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains returns true if the instant falls within [Start, End)
func (r DateRange) Contains(instant time.Time) bool {
	return !instant.Before(r.Start) && instant.Before(r.End)
}

// Nights returns the stay length in whole days
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// String formats the range as "YYYY-MM-DD - YYYY-MM-DD"
func (r DateRange) String() string {
	return fmt.Sprintf("%s - %s", r.Start.Format(DateFormat), r.End.Format(DateFormat))
}
