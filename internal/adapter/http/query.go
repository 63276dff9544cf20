package httpadapter

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// query collects optional filter parameters and remembers the first
// malformed one.
type query struct {
	values url.Values
	err    error
}

func newQuery(u *url.URL) *query {
	return &query{values: u.Query()}
}

func (q *query) uuid(name string) *uuid.UUID {
	s := q.values.Get(name)
	if s == "" || q.err != nil {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		q.err = fmt.Errorf("invalid '%s'", name)
		return nil
	}
	return &id
}

// time parses from/to bounds; a date-only "to" covers the whole day.
func (q *query) time(name string, endOfDay bool) *time.Time {
	s := q.values.Get(name)
	if s == "" || q.err != nil {
		return nil
	}
	t, err := parseTime(s)
	if err != nil {
		q.err = fmt.Errorf("invalid '%s' timestamp", name)
		return nil
	}
	if endOfDay && len(s) == len(time.DateOnly) {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}

func (q *query) str(name string) *string {
	s := q.values.Get(name)
	if s == "" {
		return nil
	}
	return &s
}
