package table

import (
	"github.com/calebcase/did/real48"
)

// Row is one line of the table.
type Row struct {
	Reactor int
	Time    float64
	Values  []float64
}

// Reshaper groups decoded values into rows.
type Reshaper struct {
	schema Schema
	d      *real48.Decoder

	state State
	row   Row

	// dropped is the number of values in a trailing incomplete row.
	dropped int
	done    bool

	err error
}

// NewReshaper returns a reshaper reading values from d.
func NewReshaper(schema Schema, d *real48.Decoder) (_ *Reshaper, err error) {
	err = schema.Validate()
	if err != nil {
		return nil, err
	}

	return &Reshaper{
		schema: schema,
		d:      d,
		state:  NewState(),
	}, nil
}

// Next reads the next row. It returns false once the source is exhausted or
// on error.
func (rs *Reshaper) Next() (ok bool) {
	if rs.done || rs.err != nil {
		return false
	}

	row := Row{
		Reactor: rs.state.Reactor,
		Time:    rs.state.Time,
		Values:  make([]float64, 0, rs.schema.Vars),
	}

	for len(row.Values) < rs.schema.Vars {
		if !rs.d.Next() {
			rs.done = true

			break
		}

		row.Values = append(row.Values, rs.d.Value())
		rs.state.NumbersRead++
	}

	if err := rs.d.Err(); err != nil {
		rs.err = Error.Wrap(err)

		return false
	}

	if rs.done {
		return rs.finish(row)
	}

	rs.row = row
	rs.state.Advance(rs.schema)

	return true
}

// finish handles the values left over at the end of the source.
func (rs *Reshaper) finish(row Row) (ok bool) {
	rs.dropped = len(row.Values)

	if !rs.schema.Strict {
		return false
	}

	if err := rs.d.Truncated(); err != nil {
		rs.err = err

		return false
	}

	if rs.dropped != 0 {
		rs.err = real48.TruncatedRecord.New(
			"reactor %d at value %d: got %d of %d values",
			rs.state.Reactor,
			rs.state.NumbersRead-rs.dropped,
			rs.dropped,
			rs.schema.Vars,
		)
	}

	return false
}

// Row returns the current row.
func (rs *Reshaper) Row() Row {
	return rs.row
}

// State returns the counters as they stand after the current row.
func (rs *Reshaper) State() State {
	return rs.state
}

// Dropped returns the number of values discarded from a trailing incomplete
// row. It is only meaningful once Next has returned false.
func (rs *Reshaper) Dropped() int {
	return rs.dropped
}

// Partial returns the number of bytes discarded from a trailing incomplete
// record.
func (rs *Reshaper) Partial() int {
	return rs.d.Partial()
}

// Err returns the first error encountered.
func (rs *Reshaper) Err() error {
	return rs.err
}
