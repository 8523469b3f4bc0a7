package shell

import "fmt"

// A DegenerateInputError is returned when the filtered
// samples cannot be normalized into a height range.
//
// Either no sample survived filtering, or every surviving
// sample has the same value.
type DegenerateInputError struct {
	Valid int
	Min   uint8
	Max   uint8
}

func (d *DegenerateInputError) Error() string {
	if d.Valid == 0 {
		return "degenerate input: no samples survive filtering"
	}
	return fmt.Sprintf("degenerate input: %d samples in flat range [%d, %d]",
		d.Valid, d.Min, d.Max)
}
