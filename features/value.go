// SPDX-License-Identifier: MIT

package features

import "fmt"

// Kind is the shape of a feature value.
type Kind int

const (
	// Scalar values carry one number.
	Scalar Kind = iota
	// Vector values carry an ordered list of numbers.
	Vector
	// Mapping values carry numbers keyed by profile id.
	Mapping
)

// String returns the lowercase kind name used in value files.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	case Mapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "scalar":
		return Scalar, nil
	case "vector":
		return Vector, nil
	case "mapping":
		return Mapping, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrMalformedValues, s)
	}
}

// Value is the result of one feature computation. Only the field matching
// Kind is set. Undefined marks a result that could not be computed because
// of degenerate input; its payload is zero.
type Value struct {
	Kind      Kind
	Scalar    float64
	Vector    []float64
	Mapping   map[string]float64
	Undefined bool
}

// ScalarValue wraps x.
func ScalarValue(x float64) Value { return Value{Kind: Scalar, Scalar: x} }

// VectorValue wraps v.
func VectorValue(v []float64) Value { return Value{Kind: Vector, Vector: v} }

// MappingValue wraps m.
func MappingValue(m map[string]float64) Value { return Value{Kind: Mapping, Mapping: m} }

// UndefinedValue returns an undefined value of kind k.
func UndefinedValue(k Kind) Value { return Value{Kind: k, Undefined: true} }
