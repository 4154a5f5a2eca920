package estimator

import "errors"

var (
	ErrUniqueGreaterThanSize   = errors.New("unique cannot be greater than size")
	ErrUniqueGreaterThanSample = errors.New("unique cannot be greater than sample")
	ErrUniqueZero              = errors.New("unique cannot be zero")

	// ErrSearchExhausted is returned by Pop when the likelihood never
	// decreased before the candidate sizes ran out, i.e. no mode was found.
	ErrSearchExhausted = errors.New("no population estimate found")
)
