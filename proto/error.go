package proto

// MalformedInputError reports a structurally invalid wire buffer:
// a truncated varint, a declared length exceeding remaining input,
// or invalid UTF-8 in a text field.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}
