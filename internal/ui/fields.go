package ui

import (
	"strconv"
	"strings"
)

// intAccessor binds an int field to a text input. Blank and unparsable
// input both read as zero.
type intAccessor struct {
	target *int
}

func (a intAccessor) Get() string {
	if *a.target == 0 {
		return ""
	}
	return strconv.Itoa(*a.target)
}

func (a intAccessor) Set(value string) {
	n, _ := strconv.Atoi(strings.TrimSpace(value))
	*a.target = n
}

// floatAccessor binds an optional price field. Blank input clears it.
type floatAccessor struct {
	target **float64
}

func (a floatAccessor) Get() string {
	if *a.target == nil {
		return ""
	}
	return strconv.FormatFloat(**a.target, 'f', -1, 64)
}

func (a floatAccessor) Set(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		*a.target = nil
		return
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return
	}
	*a.target = &f
}
