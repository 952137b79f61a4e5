// Package timeconv converts wall-clock "HH:MM" strings to minute offsets
// from midnight and back. Both the class search and the registration path
// compare availability windows in minutes, never in strings.
package timeconv

import (
	"fmt"
	"strconv"
	"strings"

	appErrors "github.com/proffy-go/proffy-api/pkg/errors"
)

// MinutesPerDay bounds the valid offset domain: 0 .. MinutesPerDay-1.
const MinutesPerDay = 24 * 60

// ToMinutes parses a 24-hour "HH:MM" string into minutes from midnight.
// Anything that is not two in-range integers split by a single colon is
// rejected: "24:00", "12:60", "1:2:3", "abc" and "" all fail.
func ToMinutes(raw string) (int, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0, invalidTime(raw)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, invalidTime(raw)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, invalidTime(raw)
	}

	return hour*60 + minute, nil
}

// FromMinutes renders a minute offset back into zero-padded "HH:MM".
// Offsets outside 0..1439 have no clock representation and error out.
func FromMinutes(total int) (string, error) {
	if total < 0 || total >= MinutesPerDay {
		return "", appErrors.Clone(appErrors.ErrInvalidTime, fmt.Sprintf("minute offset %d out of range", total))
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

func invalidTime(raw string) error {
	return appErrors.Clone(appErrors.ErrInvalidTime, fmt.Sprintf("invalid time %q, expected HH:MM", raw))
}
