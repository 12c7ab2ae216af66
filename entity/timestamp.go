package entity

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-module/carbon/v2"
	"github.com/saasukit/saasu/schema"
)

// layout used by the web service, e.g. 2013-03-07T03:21:06.14
const timestampLayout = "2006-01-02T15:04:05.999999999"

// LastModified parses the utcLastModified field.
// It returns the zero time if the field is NULL or empty.
func (e *Entity) LastModified() (time.Time, error) {
	s, ok := e.Text(schema.FieldUTCLastModified)
	if !ok || s == "" {
		return time.Time{}, nil
	}

	c := carbon.Parse(s, "UTC")
	if c.Error == nil {
		return c.ToStdTime().UTC(), nil
	}

	ts, err := time.ParseInLocation(timestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidTimestamp, "%s.%s: %q", e.Name(), schema.FieldUTCLastModified, s)
	}

	return ts, nil
}

// SetLastModified sets the utcLastModified field.
func (e *Entity) SetLastModified(t time.Time) error {
	return e.SetText(schema.FieldUTCLastModified, t.UTC().Format(timestampLayout))
}
