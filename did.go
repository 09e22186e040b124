// Package did retrieves the values stored in a DID file as a text table.
package did

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/calebcase/oops"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/errs"

	"github.com/calebcase/did/real48"
	"github.com/calebcase/did/table"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("did")

// Stats summarizes a retrieval.
type Stats struct {
	Rows     int
	Values   int
	Reactors int

	// Dropped is the number of values in a trailing incomplete row and
	// Partial the number of bytes in a trailing incomplete record. Both
	// are only non-zero when the schema is not strict.
	Dropped int
	Partial int
}

// Retrieve writes the table stored in the DID file at path to w. The file is
// closed before Retrieve returns.
func Retrieve(w io.Writer, path string, schema table.Schema) (stats Stats, err error) {
	err = schema.Validate()
	if err != nil {
		return stats, Error.Wrap(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return stats, Error.Wrap(oops.Trace(err))
	}
	defer func() {
		err = errs.Combine(err, Error.Wrap(f.Close()))
	}()

	return RetrieveReader(w, filepath.Base(path), f, schema)
}

// RetrieveReader writes the table read from r to w. The name is used in the
// table header. Reads from r are buffered.
func RetrieveReader(w io.Writer, name string, r io.Reader, schema table.Schema) (stats Stats, err error) {
	defer Error.WrapP(&err)

	log := logrus.WithFields(logrus.Fields{
		"file":     name,
		"interval": schema.Interval,
		"vars":     schema.Vars,
		"strict":   schema.Strict,
	})

	rs, err := table.NewReshaper(schema, real48.NewDecoder(bufio.NewReader(r)))
	if err != nil {
		return stats, err
	}

	e := table.NewEncoder(w, schema)

	err = e.Header(name)
	if err != nil {
		return stats, err
	}

	log.Debug("retrieving")

	for rs.Next() {
		row := rs.Row()

		err = e.Encode(&row)
		if err != nil {
			return stats, err
		}

		stats.Rows++
		stats.Reactors = row.Reactor
	}

	state := rs.State()
	stats.Values = state.NumbersRead - rs.Dropped()
	stats.Dropped = rs.Dropped()
	stats.Partial = rs.Partial()

	// Flush what was decoded even when the tail of the source was bad.
	err = errs.Combine(rs.Err(), e.Flush())
	if err != nil {
		return stats, err
	}

	log = log.WithFields(logrus.Fields{
		"rows":     stats.Rows,
		"values":   stats.Values,
		"reactors": stats.Reactors,
	})

	if stats.Dropped != 0 || stats.Partial != 0 {
		log.WithFields(logrus.Fields{
			"dropped_values": stats.Dropped,
			"partial_bytes":  stats.Partial,
		}).Warn("ignored incomplete trailing row")
	}

	log.Debug("retrieved")

	return stats, nil
}

// Convert decodes a packed real written in hex.
func Convert(s string) (_ float64, err error) {
	defer Error.WrapP(&err)

	r, err := real48.ParseHex(s)
	if err != nil {
		return 0, err
	}

	return r.Float64(), nil
}
