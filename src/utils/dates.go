package utils

import (
	"fmt"
	"time"
)

// ParseISODate accepts YYYY-MM-DD and returns it normalized.
func ParseISODate(value string) (string, error) {
	date, err := time.Parse(ShortDashDateLayout, value)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected %s", value, ShortDashDateLayout)
	}
	return date.Format(ShortDashDateLayout), nil
}
