package table

import "github.com/zeebo/errs"

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("table")

	// InvalidConfiguration is returned for a schema with fewer than one
	// variable per row.
	InvalidConfiguration = errs.Class("invalid configuration")

	// UnsupportedInterval is returned for a data interval other than those
	// listed in Intervals.
	UnsupportedInterval = errs.Class("unsupported interval")
)

// Intervals are the supported data intervals in minutes.
var Intervals = []int{10, 15, 30}

// Schema describes the layout of a DID file.
type Schema struct {
	// Interval is the number of minutes between rows.
	Interval int

	// Vars is the number of values in each row.
	Vars int

	// Strict rejects a file that ends partway through a row instead of
	// dropping the incomplete row.
	Strict bool
}

// Validate returns an error if the schema cannot be used.
func (s Schema) Validate() error {
	if s.Vars < 1 {
		return InvalidConfiguration.New("vars must be at least 1: %d", s.Vars)
	}

	for _, interval := range Intervals {
		if s.Interval == interval {
			return nil
		}
	}

	return UnsupportedInterval.New("interval must be one of %v: %d", Intervals, s.Interval)
}

// DataPerDay is the number of rows in a day.
func (s Schema) DataPerDay() int {
	return 24 * 60 / s.Interval
}

// Step is the time in hours between rows.
func (s Schema) Step() float64 {
	return float64(s.Interval) / 60.0
}
