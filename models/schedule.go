package models

// TimeOfDay is a number of minutes since midnight, in [0, 1439].
// 1439 (23:59) is the canonical end-of-day sentinel.
type TimeOfDay = int

const (
	DayStart TimeOfDay = 0
	DayEnd   TimeOfDay = 23*60 + 59
)

// Interval is a contiguous busy or free span within one calendar day.
// Start <= End always; Start == End is degenerate and dropped by the engine.
type Interval struct {
	Start TimeOfDay `bson:"start" json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End   TimeOfDay `bson:"end" json:"end"`     // minutes from midnight (e.g., 1020 for 5:00 PM)
}

// IsEmpty reports whether the interval covers no time.
func (iv Interval) IsEmpty() bool {
	return iv.End <= iv.Start
}

// DayRule kinds.
const (
	RuleRecurring = "recurring"
	RuleOverride  = "override"
)

// DayRule is a persisted availability rule owned by one user.
//
// A recurring rule is keyed by Weekday and reused every week; an override is
// keyed by Date and supersedes any recurring rule on that date. A user holds
// at most one recurring rule per weekday and one override per date. Intervals
// are always *busy* spans.
type DayRule struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"userId" json:"userId"`
	Kind      string     `bson:"kind" json:"kind"`
	Weekday   string     `bson:"weekday,omitempty" json:"weekday,omitempty"` // "monday".."sunday", recurring only
	Date      string     `bson:"date,omitempty" json:"date,omitempty"`       // "2006-01-02", override only
	Intervals []Interval `bson:"intervals" json:"intervals"`
}

// FullDayBusy is the single interval an override stores to mean "fully unavailable".
func FullDayBusy() Interval {
	return Interval{Start: DayStart, End: DayEnd}
}

// ResolvedDay is the computed availability of one calendar date. Derived,
// never persisted.
type ResolvedDay struct {
	Date      string     `json:"date"`
	Weekday   string     `json:"day"`
	Available bool       `json:"available"`
	FreeSlots []TimeSlot `json:"time_slots"`
}

// TimeSlot is an Interval rendered for the wire ("HH:MM" strings).
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// MonthAvailability lists the bookable dates of one calendar month.
type MonthAvailability struct {
	Year          int      `json:"year"`
	Month         int      `json:"month"`
	AvailableDays []string `json:"available_days"`
}

// TimeRange is a caller-supplied pair of time strings, parsed by the engine.
type TimeRange struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// RecurringDayRequest opens one weekday with an available window; everything
// outside the window is stored as busy.
type RecurringDayRequest struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// SpecificDayRequest configures a single date. Unavailable wins over Times;
// otherwise Times are available windows whose complement is stored as busy.
type SpecificDayRequest struct {
	Date        string      `json:"date"`
	Unavailable bool        `json:"unavailable"`
	Times       []TimeRange `json:"times"`
}

// SpecificUnavailableRequest adds busy spans to a date on top of whatever the
// date already holds (promoting the recurring rule first when needed).
type SpecificUnavailableRequest struct {
	Date  string      `json:"date"`
	Times []TimeRange `json:"times"`
}

// ScheduleWriteRequest is the batch payload accepted by the create and edit
// endpoints.
type ScheduleWriteRequest struct {
	RecurringDays       []RecurringDayRequest        `json:"recurring_days"`
	SpecificDays        []SpecificDayRequest         `json:"specific_days"`
	UnavailableDates    []string                     `json:"unavailable_dates"`
	SpecificUnavailable []SpecificUnavailableRequest `json:"specific_unavailable"`
}
