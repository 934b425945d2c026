package frame

import "fmt"

// Column is a named, ordered sequence of values sharing a single kind.
// Missing values are allowed in a column of any kind.
type Column struct {
	Name   string
	Kind   Kind
	Values []Value
}

// Ints builds an integer column.
func Ints(name string, vs ...int64) Column {
	values := make([]Value, len(vs))
	for i, v := range vs {
		values[i] = Int(v)
	}
	return Column{Name: name, Kind: KindInt, Values: values}
}

// Floats builds a floating-point column.
func Floats(name string, vs ...float64) Column {
	values := make([]Value, len(vs))
	for i, v := range vs {
		values[i] = Float(v)
	}
	return Column{Name: name, Kind: KindFloat, Values: values}
}

// Strings builds a string column.
func Strings(name string, vs ...string) Column {
	values := make([]Value, len(vs))
	for i, v := range vs {
		values[i] = String(v)
	}
	return Column{Name: name, Kind: KindString, Values: values}
}

// Bools builds a boolean column.
func Bools(name string, vs ...bool) Column {
	values := make([]Value, len(vs))
	for i, v := range vs {
		values[i] = Bool(v)
	}
	return Column{Name: name, Kind: KindBool, Values: values}
}

// Col builds a column of the given kind from explicit values, which may
// include Missing(). Validation happens when the column joins a frame.
func Col(name string, kind Kind, vs ...Value) Column {
	values := make([]Value, len(vs))
	copy(values, vs)
	return Column{Name: name, Kind: kind, Values: values}
}

// clone returns a deep copy of the column.
func (c Column) clone() Column {
	values := make([]Value, len(c.Values))
	copy(values, c.Values)
	return Column{Name: c.Name, Kind: c.Kind, Values: values}
}

// check verifies that every value matches the column kind or is missing.
func (c Column) check() error {
	if c.Name == "" {
		return fmt.Errorf("column has no name")
	}
	if c.Kind == KindMissing {
		return fmt.Errorf("column %q has no kind", c.Name)
	}
	for i, v := range c.Values {
		if v.kind != KindMissing && v.kind != c.Kind {
			return fmt.Errorf("column %q row %d: %s value in %s column", c.Name, i, v.kind, c.Kind)
		}
	}
	return nil
}
