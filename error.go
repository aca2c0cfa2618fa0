package tfs

import "fmt"

// UnknownFieldNameError reports a leg mapping key outside the schema.
type UnknownFieldNameError struct {
	Name string
}

func (e *UnknownFieldNameError) Error() string {
	return fmt.Sprintf("unknown field name %q", e.Name)
}

// UnknownEnumValueError reports a name outside its closed enumeration.
type UnknownEnumValueError struct {
	Field string
	Value string
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Field, e.Value)
}

// PassengerMixError reports a passenger list no itinerary can carry.
type PassengerMixError struct {
	Reason string
}

func (e *PassengerMixError) Error() string {
	return "invalid passenger mix: " + e.Reason
}
