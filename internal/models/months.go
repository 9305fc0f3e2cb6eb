package models

// MonthKey identifies one of the 13 planning buckets: the twelve calendar
// months of the club year plus a trailing bucket for January of the
// following year (membership renewals land there).
type MonthKey string

const (
	MonthJan     MonthKey = "jan"
	MonthFeb     MonthKey = "feb"
	MonthMar     MonthKey = "mar"
	MonthApr     MonthKey = "apr"
	MonthMay     MonthKey = "may"
	MonthJun     MonthKey = "jun"
	MonthJul     MonthKey = "jul"
	MonthAug     MonthKey = "aug"
	MonthSep     MonthKey = "sep"
	MonthOct     MonthKey = "oct"
	MonthNov     MonthKey = "nov"
	MonthDec     MonthKey = "dec"
	MonthJanNext MonthKey = "jan_next"
)

// MonthOrder is the fixed display and ledger ordering.
var MonthOrder = []MonthKey{
	MonthJan, MonthFeb, MonthMar, MonthApr, MonthMay, MonthJun,
	MonthJul, MonthAug, MonthSep, MonthOct, MonthNov, MonthDec,
	MonthJanNext,
}

var monthLabels = map[MonthKey]string{
	MonthJan:     "Jan",
	MonthFeb:     "Feb",
	MonthMar:     "Mar",
	MonthApr:     "Apr",
	MonthMay:     "May",
	MonthJun:     "Jun",
	MonthJul:     "Jul",
	MonthAug:     "Aug",
	MonthSep:     "Sep",
	MonthOct:     "Oct",
	MonthNov:     "Nov",
	MonthDec:     "Dec",
	MonthJanNext: "Jan (next)",
}

// Label returns the human-readable month name.
func (m MonthKey) Label() string {
	if label, ok := monthLabels[m]; ok {
		return label
	}
	return string(m)
}

// Valid reports whether m is one of the 13 known keys.
func (m MonthKey) Valid() bool {
	_, ok := monthLabels[m]
	return ok
}

// ParseMonthKey normalizes free-form input to a MonthKey, falling back to
// January when the input does not name a known bucket.
func ParseMonthKey(s string) MonthKey {
	m := MonthKey(s)
	if m.Valid() {
		return m
	}
	return MonthJan
}
