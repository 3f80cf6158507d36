package svg

import (
	"math"
	"strconv"
	"strings"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// splitOnCommaOrSpace returns a list of strings after splitting the
// input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

// parseNumberList parses a whitespace- or comma-separated list of
// floating point numbers, as found in viewBox, points and transform
// function arguments.
func parseNumberList(s string) ([]float64, error) {
	fields := splitOnCommaOrSpace(s)
	list := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, nil
}

// parsePoints parses a points attribute into coordinate pairs. An odd
// number of coordinates is rejected.
func parsePoints(element, v string) ([]Tuple, error) {
	nums, err := parseNumberList(v)
	if err != nil {
		return nil, &ShapeError{Element: element, Attr: "points", Msg: "malformed number: " + err.Error()}
	}
	if len(nums)%2 != 0 {
		return nil, &ShapeError{Element: element, Attr: "points", Msg: "odd number of coordinates"}
	}
	points := make([]Tuple, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		if !isFinite(nums[i]) || !isFinite(nums[i+1]) {
			return nil, &ShapeError{Element: element, Attr: "points", Msg: "non-finite coordinate"}
		}
		points = append(points, Tuple{nums[i], nums[i+1]})
	}
	return points, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
