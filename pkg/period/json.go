package period

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// String renders the interval in bracket notation, e.g.
// [2015-01-01T00:00:00Z, 2015-02-01T00:00:00Z)
func (i Interval) String() string {
	b := i.boundary.String()
	return fmt.Sprintf("%c%s, %s%c",
		b[0],
		i.start.Format(time.RFC3339Nano),
		i.end.Format(time.RFC3339Nano),
		b[1])
}

type intervalJSON struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Boundary string    `json:"boundary,omitempty"`
}

// MarshalJSON encodes the interval as {"start", "end", "boundary"}
func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{Start: i.start, End: i.end, Boundary: i.boundary.String()})
}

// UnmarshalJSON decodes and re-validates an interval. A missing boundary
// field maps to the default boundary type.
func (i *Interval) UnmarshalJSON(data []byte) error {
	var raw intervalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(ErrInvalidInput, err.Error())
	}
	boundary, err := ParseBoundaryType(raw.Boundary)
	if err != nil {
		return err
	}
	decoded, err := NewWithBoundary(raw.Start, raw.End, boundary)
	if err != nil {
		return err
	}
	*i = decoded
	return nil
}

// MarshalJSON encodes the sequence as a JSON array of intervals
func (s *Sequence) MarshalJSON() ([]byte, error) {
	if s.intervals == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.intervals)
}

// UnmarshalJSON replaces the sequence's contents with the decoded intervals
func (s *Sequence) UnmarshalJSON(data []byte) error {
	var intervals []Interval
	if err := json.Unmarshal(data, &intervals); err != nil {
		return err
	}
	s.intervals = intervals
	return nil
}
