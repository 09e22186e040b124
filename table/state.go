package table

// State holds the counters that label rows. It is advanced once per completed
// row and must see rows in file order.
type State struct {
	// NumbersRead is the total number of values decoded.
	NumbersRead int

	// RowsPrinted is the number of rows completed for the current
	// reactor since its last reset.
	RowsPrinted int

	// Reactor is the current reactor, starting at 1.
	Reactor int

	// Time is the elapsed hours for the current reactor.
	Time float64
}

// NewState returns the state before the first row.
func NewState() State {
	return State{
		Reactor: 1,
	}
}

// Advance moves the state past a completed row.
func (s *State) Advance(schema Schema) {
	if s.RowsPrinted > schema.DataPerDay() {
		s.Time = 0
		s.Reactor++
		s.RowsPrinted = 0

		return
	}

	s.Time += schema.Step()
	s.RowsPrinted++
}
