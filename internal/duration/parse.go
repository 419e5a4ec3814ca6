// Package duration parses and formats countdown durations given in the
// colon-separated "[[[d:]h:]m:]s[.ms]" format.
package duration

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DanikVitek/timer-cli/internal/herrors"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// maxParts is the number of colon-separated tokens collected. Only four
// are meaningful (days, hours, minutes, seconds); a fifth is kept so an
// over-long input is rejected instead of silently truncated.
const maxParts = 5

// maxSeconds is the largest whole-second count a time.Duration can hold.
const maxSeconds = uint64(math.MaxInt64 / int64(time.Second))

const (
	parseTitle   = "Failed to parse the duration"
	formatAdvice = `Provide the duration in the following format: "d:h:m:s.ms"`
)

// Parse converts a duration string into a time.Duration. Fields are
// read right to left: seconds (with optional .milliseconds), then
// minutes, hours, and days. All arithmetic is overflow-checked.
func Parse(input string) (time.Duration, error) {
	if input == "" {
		return 0, herrors.UserWithCause(parseTitle, formatAdvice,
			herrors.User("Missing parts",
				"Make sure to provide at least the seconds part of the duration"))
	}

	parts := splitRight(input, ':', maxParts)
	if len(parts) > 4 {
		return 0, herrors.UserWithCause(parseTitle, formatAdvice,
			herrors.User("Too many parts",
				"Make sure to provide at most 4 parts for days, hours, minutes, and seconds"))
	}

	total, err := parseSeconds(parts[0])
	if err != nil {
		return 0, err
	}

	for i, part := range parts[1:] {
		var unit string
		var mult uint64
		switch i + 1 {
		case 1:
			unit, mult = "minutes", secondsPerMinute
		case 2:
			unit, mult = "hours", secondsPerHour
		case 3:
			unit, mult = "days", secondsPerDay
		default:
			// Unreachable with the 4-token cap above.
			return 0, herrors.User("Invalid duration part",
				"Make sure to provide a valid number for the duration part")
		}

		value, err := parseField(part, unit)
		if err != nil {
			return 0, err
		}
		if mult != 0 && value > math.MaxUint64/mult {
			return 0, overflowErr(unit)
		}
		d, err := secondsToDuration(value*mult, unit)
		if err != nil {
			return 0, err
		}
		total, err = addChecked(total, d, unit)
		if err != nil {
			return 0, err
		}
	}

	return total, nil
}

// parseSeconds handles the rightmost token: seconds with at most one
// ".milliseconds" sub-part.
func parseSeconds(token string) (time.Duration, error) {
	segs := strings.SplitN(token, ".", 3)
	if len(segs) > 2 {
		return 0, herrors.UserWithCause(parseTitle, formatAdvice,
			herrors.User("Too many parts in seconds.milliseconds",
				"Make sure to provide at most one dot in the seconds part"))
	}

	secs, err := parseField(segs[0], "seconds")
	if err != nil {
		return 0, err
	}
	total, err := secondsToDuration(secs, "seconds")
	if err != nil {
		return 0, err
	}

	if len(segs) == 2 {
		millis, err := parseField(segs[1], "milliseconds")
		if err != nil {
			return 0, err
		}
		if millis > uint64(math.MaxInt64/int64(time.Millisecond)) {
			return 0, overflowErr("milliseconds")
		}
		total, err = addChecked(total, time.Duration(millis)*time.Millisecond, "milliseconds")
		if err != nil {
			return 0, err
		}
	}

	return total, nil
}

// parseField parses one positional field as a non-negative integer.
// A value too large for uint64 is reported as an overflow of the unit
// rather than a bare syntax failure.
func parseField(token, unit string) (uint64, error) {
	v, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, overflowErr(unit)
		}
		return 0, herrors.UserWithCause(
			"Failed to parse the "+unit+" part",
			"Make sure to provide a valid number for the "+unit+" part",
			err)
	}
	return v, nil
}

// secondsToDuration converts a second count to a time.Duration,
// rejecting values that do not fit in int64 nanoseconds.
func secondsToDuration(secs uint64, unit string) (time.Duration, error) {
	if secs > maxSeconds {
		return 0, overflowErr(unit)
	}
	return time.Duration(secs) * time.Second, nil
}

// addChecked adds two non-negative durations, rejecting int64 overflow.
func addChecked(a, b time.Duration, unit string) (time.Duration, error) {
	if a > math.MaxInt64-b {
		return 0, overflowErr(unit)
	}
	return a + b, nil
}

func overflowErr(unit string) error {
	return herrors.UserWithCause(
		"Duration overflow",
		"The provided duration is too large to be represented",
		herrors.User("Overflow in "+unit,
			"Make sure the value is within a reasonable range"))
}

// splitRight splits s on sep from the right, collecting at most n
// tokens ordered rightmost first. Input beyond the n-th token is left
// unsplit, mirroring a take-n over a right-to-left split.
func splitRight(s string, sep byte, n int) []string {
	parts := make([]string, 0, n)
	for len(parts) < n {
		i := strings.LastIndexByte(s, sep)
		if i < 0 {
			parts = append(parts, s)
			break
		}
		parts = append(parts, s[i+1:])
		s = s[:i]
	}
	return parts
}
