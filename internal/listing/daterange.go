// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listing

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the format of the start_date and end_date query parameters.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date filter parameter is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// DateRange is a half-open interval [From, Until) covering whole calendar
// days in one time zone.
type DateRange struct {
	From  time.Time
	Until time.Time
}

// ParseDateRange builds the filter for start and end dates given as
// YYYY-MM-DD in loc. Both bounds must be present to filter; if either is
// empty it returns nil and no error. The end day is included in full.
func ParseDateRange(start, end string, loc *time.Location) (*DateRange, error) {
	if start == "" || end == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	from, err := time.ParseInLocation(DateLayout, start, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date %q", ErrInvalidDate, start)
	}
	last, err := time.ParseInLocation(DateLayout, end, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date %q", ErrInvalidDate, end)
	}

	return &DateRange{From: from, Until: last.AddDate(0, 0, 1)}, nil
}

// Empty reports whether no instant can satisfy the range, which happens
// when the start date is after the end date.
func (r *DateRange) Empty() bool {
	return !r.From.Before(r.Until)
}
