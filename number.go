package vibecheck

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInteger accepts any Go value that holds an integer and returns it as an
// int64. Integral floats (4.0) are accepted; fractions, NaN, infinities,
// values outside the int64 range, strings, booleans and nil are rejected with
// ErrInvalidInput.
func ToInteger(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return fromUint(uint64(n))
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return fromUint(n)
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidInput, n.String())
		}
		return fromFloat(f)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidInput, v)
	}
}

// ParseNumber parses a base-10 integer, as typed on a command line.
func ParseNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return n, nil
}

func fromUint(n uint64) (int64, error) {
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d overflows int64", ErrInvalidInput, n)
	}
	return int64(n), nil
}

func fromFloat(f float64) (int64, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, f)
	case f != math.Trunc(f):
		return 0, fmt.Errorf("%w: %v has a fractional part", ErrInvalidInput, f)
	case f < math.MinInt64 || f >= math.MaxInt64:
		// float64(math.MaxInt64) rounds up to 2^63, which does not fit
		return 0, fmt.Errorf("%w: %v overflows int64", ErrInvalidInput, f)
	}
	return int64(f), nil
}
