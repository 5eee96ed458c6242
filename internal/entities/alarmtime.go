package entities

import (
	"regexp"
	"strconv"

	"github.com/statmaxer/statmaxer/internal/errors"
)

// Regex for the persisted wall-clock alarm format, e.g. "06:00", "21:30"
var alarmTimeRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseAlarmTime parses an "HH:MM" wall-clock alarm time into its hour
// and minute components.
func ParseAlarmTime(s string) (hour, minute int, err error) {
	matches := alarmTimeRegex.FindStringSubmatch(s)
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid alarm time: %q (expected format: HH:MM)", s)
	}

	hour, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid alarm hour: %q", s)
	}
	minute, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid alarm minute: %q", s)
	}

	if hour > 23 || minute > 59 {
		return 0, 0, errors.InvalidArgumentf("alarm time out of range: %q", s)
	}

	return hour, minute, nil
}
