// parse/parse.go
// Package parse provides small numeric parsing helpers with both strict and
// best-effort variants.
package parse

import "strconv"

// Int64 parses s as a signed base-10 64-bit integer and reports any failure
// to the caller. It is the strict counterpart to Int64OrZero.
func Int64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Int64OrZero parses s as a signed base-10 64-bit integer, returning 0 on any
// failure: empty input, non-numeric content, surrounding whitespace, or
// overflow. Callers cannot distinguish a failed parse from a literal "0";
// use Int64 when that distinction matters.
func Int64OrZero(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
