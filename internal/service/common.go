package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func validateNonNegative(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("name is required")
	}
	return name, nil
}

// newTimeID assigns creation-time identifiers the way the stored format
// expects them: a decimal timestamp string. Nanosecond precision keeps two
// records created back to back from colliding.
func newTimeID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
