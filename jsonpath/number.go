package jsonpath

import "strconv"

// parseFloat parses a decimal literal as used by JSONPath index, slice and
// filter-comparison numbers. It accepts an optional leading sign, which
// strconv.ParseFloat already supports.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// parseIntLiteral parses a bracket index or slice bound. The lexer's number
// tokens carry an optional leading sign and may carry a fraction; a
// fractional literal (e.g. "1.5") is rejected here with an error.
func parseIntLiteral(s string) (int, error) {
	return strconv.Atoi(s)
}
