package real48

import "github.com/zeebo/errs"

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("real48")

	// TruncatedRecord is returned when the source ends partway through a
	// record.
	TruncatedRecord = errs.Class("truncated record")
)
