package table

import (
	"bufio"
	"io"
	"strconv"
)

// Encoder writes rows as semicolon separated text.
type Encoder struct {
	w      *bufio.Writer
	schema Schema
	buf    []byte
}

// NewEncoder returns an encoder writing to w. Flush must be called once all
// rows are written.
func NewEncoder(w io.Writer, schema Schema) *Encoder {
	return &Encoder{
		w:      bufio.NewWriter(w),
		schema: schema,
	}
}

// Header writes the two header lines. The first names the source and its
// schema, the second labels each column.
func (e *Encoder) Header(name string) (err error) {
	defer Error.WrapP(&err)

	b := e.buf[:0]

	b = append(b, name...)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(e.schema.Interval), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(e.schema.Vars), 10)
	b = append(b, '\n')

	b = append(b, "REACTOR; Time;"...)
	for i := 1; i <= e.schema.Vars; i++ {
		b = append(b, " Var "...)
		b = strconv.AppendInt(b, int64(i), 10)
		b = append(b, ';')
	}
	b = append(b, '\n')

	e.buf = b

	_, err = e.w.Write(b)

	return err
}

// Encode writes one row.
func (e *Encoder) Encode(row *Row) (err error) {
	defer Error.WrapP(&err)

	b := e.buf[:0]

	b = strconv.AppendInt(b, int64(row.Reactor), 10)
	b = append(b, "; "...)
	b = strconv.AppendFloat(b, row.Time, 'f', 3, 64)
	b = append(b, ';')
	for _, v := range row.Values {
		b = append(b, ' ')
		b = strconv.AppendFloat(b, v, 'f', 3, 64)
		b = append(b, ';')
	}
	b = append(b, '\n')

	e.buf = b

	_, err = e.w.Write(b)

	return err
}

// Flush writes any buffered output.
func (e *Encoder) Flush() (err error) {
	defer Error.WrapP(&err)

	return e.w.Flush()
}
