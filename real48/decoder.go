package real48

import (
	"errors"
	"io"

	"github.com/calebcase/oops"
)

// Decoder reads packed reals from a stream one record at a time.
type Decoder struct {
	r io.Reader

	consumed uint64
	count    uint64

	value Real

	// partial is the number of bytes read from a trailing short record.
	partial int

	err error
}

// NewDecoder returns a decoder reading records from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Next reads the next record. It returns false at the end of the stream or
// on error. A clean end of stream leaves Err nil.
func (d *Decoder) Next() (ok bool) {
	if d.err != nil || d.partial != 0 {
		return false
	}

	d.value = Real{}

	n, err := io.ReadFull(d.r, d.value[:])
	d.consumed += uint64(n)

	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return false
	case errors.Is(err, io.ErrUnexpectedEOF):
		d.partial = n
		d.value = Real{}

		return false
	default:
		d.err = oops.Trace(err)

		return false
	}

	d.count++

	return true
}

// Real returns the current record.
func (d *Decoder) Real() Real {
	return d.value
}

// Value returns the current record decoded.
func (d *Decoder) Value() float64 {
	return Decode(d.value)
}

// Err returns the first read error encountered. A trailing short record is
// not an error here; see Truncated.
func (d *Decoder) Err() error {
	return d.err
}

// Truncated returns a TruncatedRecord error if the stream ended partway
// through a record and nil otherwise.
func (d *Decoder) Truncated() error {
	if d.partial == 0 {
		return nil
	}

	return TruncatedRecord.New(
		"record %d at offset %d: got %d of %d bytes",
		d.count,
		d.consumed-uint64(d.partial),
		d.partial,
		Size,
	)
}

// Partial returns the number of bytes in a trailing short record.
func (d *Decoder) Partial() int {
	return d.partial
}

// Consumed returns the number of bytes read from the stream.
func (d *Decoder) Consumed() uint64 {
	return d.consumed
}

// Count returns the number of whole records read.
func (d *Decoder) Count() uint64 {
	return d.count
}
