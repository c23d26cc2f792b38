// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package variables

import (
	"fmt"
)

// Value is implemented only by StringValue and OtherValue.
type Value interface {
	// AsString reports the string form of the value and whether it has one.
	AsString() (string, bool)
	// AsGoValue returns the underlying Go value as it was loaded.
	AsGoValue() interface{}

	isValue()
}

type StringValue string

var _ Value = StringValue("")

func (v StringValue) AsString() (string, bool) { return string(v), true }
func (v StringValue) AsGoValue() interface{}   { return string(v) }
func (StringValue) isValue()                   {}

// OtherValue is any configuration value that is not a string:
// numbers, booleans, dates, arrays and tables.
type OtherValue struct {
	Raw interface{}
}

var _ Value = OtherValue{}

func (OtherValue) AsString() (string, bool) { return "", false }
func (v OtherValue) AsGoValue() interface{} { return v.Raw }
func (OtherValue) isValue()                 {}

func (v OtherValue) String() string {
	return fmt.Sprintf("%v (%T)", v.Raw, v.Raw)
}

// NewValue wraps a decoded configuration value.
func NewValue(val interface{}) Value {
	if typedVal, ok := val.(string); ok {
		return StringValue(typedVal)
	}
	return OtherValue{val}
}
