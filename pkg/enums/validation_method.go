package enums

import "fmt"

// ValidationMethod records how a visitor proved they were at a brewery.
type ValidationMethod string

const (
	ValidationMethodCode ValidationMethod = "code"
	ValidationMethodQR   ValidationMethod = "qr"
)

var validValidationMethods = []ValidationMethod{
	ValidationMethodCode,
	ValidationMethodQR,
}

// String implements fmt.Stringer.
func (v ValidationMethod) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ValidationMethod.
func (v ValidationMethod) IsValid() bool {
	for _, candidate := range validValidationMethods {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseValidationMethod converts raw input into a ValidationMethod.
func ParseValidationMethod(value string) (ValidationMethod, error) {
	for _, candidate := range validValidationMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid validation method %q", value)
}
