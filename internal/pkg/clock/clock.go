package clock

import "time"

// All date-keyed operations in the system run against a single civil
// timezone, regardless of where a punch request originates. "today" is the
// civil date in that zone, not the caller's local date.
const CivilTimezone = "Asia/Kolkata"

// Clock supplies the current instant and civil date used by the punch,
// absence and leave engines.
type Clock interface {
	Now() time.Time
	// Today returns the civil date at midnight in the fixed timezone.
	Today() time.Time
	// FormatTimeOfDay formats an instant as a 12-hour "hh:mm AM" string.
	FormatTimeOfDay(t time.Time) string
}

type civilClock struct {
	loc *time.Location
}

func NewCivilClock() Clock {
	return &civilClock{loc: CivilLocation()}
}

// CivilLocation returns the fixed civil timezone.
func CivilLocation() *time.Location {
	loc, err := time.LoadLocation(CivilTimezone)
	if err != nil {
		// IST has no DST, a fixed offset is equivalent.
		loc = time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

func (c *civilClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *civilClock) Today() time.Time {
	return Midnight(c.Now())
}

func (c *civilClock) FormatTimeOfDay(t time.Time) string {
	return t.In(c.loc).Format("03:04 PM")
}

// Midnight truncates t to the start of its civil day, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Fixed returns a Clock pinned to a single instant. Used in tests.
func Fixed(t time.Time) Clock {
	return &fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (f *fixedClock) Now() time.Time   { return f.t }
func (f *fixedClock) Today() time.Time { return Midnight(f.t) }
func (f *fixedClock) FormatTimeOfDay(t time.Time) string {
	return t.In(f.t.Location()).Format("03:04 PM")
}
