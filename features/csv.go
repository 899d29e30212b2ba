// SPDX-License-Identifier: MIT

package features

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// undefinedCell marks an Undefined value in value files.
const undefinedCell = "NA"

var header = []string{"profile_id", "kind", "value"}

// WriteValues writes values as CSV, one row per profile id in lexical
// order:
//
//	profile_id,kind,value
//	ic_0,scalar,12.5
//	ic_1,vector,1,0.5
//	map,mapping,ic_0=1,ic_1=2
//	ic_2,scalar,NA
//
// Vector entries and mapping key=value pairs (sorted by key) occupy one
// cell each. Numbers are written in the shortest form that parses back to
// the same float64.
func WriteValues(w io.Writer, values map[string]Value) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		v := values[id]
		row := []string{id, v.Kind.String()}
		switch {
		case v.Undefined:
			row = append(row, undefinedCell)
		case v.Kind == Scalar:
			row = append(row, formatFloat(v.Scalar))
		case v.Kind == Vector:
			for _, x := range v.Vector {
				row = append(row, formatFloat(x))
			}
		case v.Kind == Mapping:
			keys := make([]string, 0, len(v.Mapping))
			for k := range v.Mapping {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				row = append(row, k+"="+formatFloat(v.Mapping[k]))
			}
		default:
			return fmt.Errorf("features: cannot write %s value of %q", v.Kind, id)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadValues parses the output of WriteValues.
func ReadValues(r io.Reader) (map[string]Value, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	out := make(map[string]Value)
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedValues, err)
		}
		if line == 1 && slices.Equal(row, header) {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformedValues, line, len(row))
		}

		id, cells := row[0], row[2:]
		kind, err := ParseKind(row[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, dup := out[id]; dup {
			return nil, fmt.Errorf("%w: line %d repeats %q", ErrMalformedValues, line, id)
		}
		v, err := parseCells(kind, cells)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedValues, line, err)
		}
		out[id] = v
	}

	return out, nil
}

func parseCells(kind Kind, cells []string) (Value, error) {
	if len(cells) == 1 && cells[0] == undefinedCell {
		return UndefinedValue(kind), nil
	}

	switch kind {
	case Scalar:
		if len(cells) != 1 {
			return Value{}, fmt.Errorf("scalar with %d cells", len(cells))
		}
		x, err := strconv.ParseFloat(cells[0], 64)
		return ScalarValue(x), err

	case Vector:
		vec := make([]float64, 0, len(cells))
		for _, c := range cells {
			x, err := strconv.ParseFloat(c, 64)
			if err != nil {
				return Value{}, err
			}
			vec = append(vec, x)
		}
		return VectorValue(vec), nil

	default:
		m := make(map[string]float64, len(cells))
		for _, c := range cells {
			i := strings.LastIndexByte(c, '=')
			if i < 0 {
				return Value{}, fmt.Errorf("mapping cell %q has no '='", c)
			}
			x, err := strconv.ParseFloat(c[i+1:], 64)
			if err != nil {
				return Value{}, err
			}
			m[c[:i]] = x
		}
		return MappingValue(m), nil
	}
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
