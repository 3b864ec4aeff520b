package period

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

var instantLayouts = []string{time.RFC3339Nano, "2006-01-02"}

// ParseInstant interprets s as a point in time: RFC3339 with or without
// fractional seconds, a bare date, or an integer count of unix seconds.
func ParseInstant(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, errors.Wrapf(ErrInvalidInput, "%q is not an instant", s)
}

// ParseDuration interprets s as an elapsed time: Go duration syntax like
// "36h30m", or a plain number of seconds.
func ParseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return 0, errors.Wrapf(ErrInvalidInput, "%q is not a duration", s)
}
