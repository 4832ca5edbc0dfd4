package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrNotANumber = errors.New("must be a number")

// FlexInt decodes from a JSON number or a numeric string ("27").
// The web client sends form values as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))

	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < math.MinInt || v >= math.MaxInt {
		return ErrNotANumber
	}
	*f = FlexInt(int(v))
	return nil
}

// OptionalInt tells a missing field apart from an explicit null. Use it as a
// non-pointer field so the decoder hands it the null.
type OptionalInt struct {
	Set   bool // the key was present
	Valid bool // the value was not null
	Value int
}

func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	o.Set = true
	if strings.TrimSpace(string(b)) == "null" {
		o.Valid, o.Value = false, 0
		return nil
	}
	var f FlexInt
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	o.Valid, o.Value = true, int(f)
	return nil
}

// Ptr returns nil for a nil receiver, else the value as *int.
func (f *FlexInt) Ptr() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
