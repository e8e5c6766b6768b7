package config

import (
	"errors"
	"strconv"
	"time"

	"github.com/ccachego/ccache/ccerrors"
)

var (
	errEmptyDuration             = errors.New("empty duration")
	errUnsupportedDurationSuffix = errors.New("invalid suffix (supported: d (day) and s (second))")
)

// ParseInt parses value as a base-10 signed integer. The entire string
// must be consumed; trailing garbage is an error.
func ParseInt(value string) (int, error) {
	n, err := strconv.ParseInt(value, 10, strconv.IntSize)
	if err != nil {
		return 0, ccerrors.NewParseError(value, err)
	}
	return int(n), nil
}

// ParseUint32 parses value as a base-10 unsigned integer that fits in
// 32 bits. The entire string must be consumed.
func ParseUint32(value string) (uint32, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, ccerrors.NewParseError(value, err)
	}
	return uint32(n), nil
}

// ParseDuration parses a value with a required suffix of "d" (days) or
// "s" (seconds) and returns the equivalent time.Duration. Unlike
// time.ParseDuration, only these two units are accepted — this mirrors
// the config-file duration syntax ccache itself uses.
func ParseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, ccerrors.NewParseError(value, errEmptyDuration)
	}

	var factor time.Duration
	switch value[len(value)-1] {
	case 'd':
		factor = 24 * time.Hour
	case 's':
		factor = time.Second
	default:
		return 0, ccerrors.NewParseError(value, errUnsupportedDurationSuffix)
	}

	n, err := ParseUint32(value[:len(value)-1])
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * factor, nil
}
