package period

import (
	"time"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
)

// ParseFromTo parses from and to dates for range queries.
// A reversed range is returned as given; see TimeRange.Reversed.
func ParseFromTo(from, to string) (*TimeRange, error) {
	fromTime, err := parseDate(from)
	if err != nil {
		return nil, errors.InvalidDateFormat(from)
	}

	toTime, err := parseDate(to)
	if err != nil {
		return nil, errors.InvalidDateFormat(to)
	}

	return &TimeRange{
		From: fromTime,
		To:   toTime,
	}, nil
}

// parseDate parses various date formats
func parseDate(input string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"2006-01-02 15:04:05",
		"2006/01/02",
	}

	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, input)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
