package edit

import "fmt"

// InvalidIndexError reports an index below the first addressable
// position. Index 0 is reserved by the remote service.
type InvalidIndexError struct {
	Index int64
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("index %d is out of range: document indices start at 1", e.Index)
}

// InvalidRangeError reports a ranged operation whose end does not
// exceed its start.
type InvalidRangeError struct {
	Start, End int64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("end index %d must be greater than start index %d", e.End, e.Start)
}
