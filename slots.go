package argot

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var errDuplicate = errors.New("duplicate values provided")

// valueSlot is where a parsed value lands. One implementation covers all
// cardinalities: scalar slots reject a second fill, repeating slots
// accumulate in encounter order.
type valueSlot struct {
	repeating bool
	count     int

	// store receives the raw token after cardinality checks. In value
	// mode it coerces into the destination field; in redact mode it
	// records the argument name instead.
	store func(arg, value string) error
}

func (s *valueSlot) fill(arg, value string) error {
	if !s.repeating && s.count > 0 {
		return errDuplicate
	}
	if err := s.store(arg, value); err != nil {
		return err
	}
	s.count++
	return nil
}

// markFilled satisfies requirement checking without storing anything.
// Used by the environment fallback in redact mode, where values are
// never materialized.
func (s *valueSlot) markFilled() {
	s.count++
}

var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	argValueType        = reflect.TypeOf((*Value)(nil)).Elem()
	durationType        = reflect.TypeOf(time.Duration(0))
)

// setValue coerces a single token into v. Pointers are allocated,
// slices appended. Types implementing Value or encoding.TextUnmarshaler
// parse themselves.
func setValue(v reflect.Value, s string) error {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		if custom, ok := customSetter(v); ok {
			return custom(s)
		}
		v = v.Elem()
	}
	if custom, ok := customSetter(v); ok {
		return custom(s)
	}
	if v.Kind() == reflect.Slice {
		elem := reflect.New(v.Type().Elem()).Elem()
		if err := setValue(elem, s); err != nil {
			return err
		}
		v.Set(reflect.Append(v, elem))
		return nil
	}
	if v.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
		return nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
		return nil
	}
	return fmt.Errorf("unsupported field kind %s", v.Kind())
}

// customSetter returns a parse function when the value (or its address)
// implements Value or encoding.TextUnmarshaler.
func customSetter(v reflect.Value) (func(string) error, bool) {
	candidates := []reflect.Value{v}
	if v.CanAddr() {
		candidates = append(candidates, v.Addr())
	}
	for _, c := range candidates {
		if c.Type().Implements(argValueType) {
			av := c.Interface().(Value)
			return av.UnmarshalArg, true
		}
		if c.Type().Implements(textUnmarshalerType) {
			tu := c.Interface().(encoding.TextUnmarshaler)
			return func(s string) error { return tu.UnmarshalText([]byte(s)) }, true
		}
	}
	return nil, false
}

// setSwitch flips a bool or saturating-increments an integer counter.
func setSwitch(v reflect.Value) {
	switch v.Kind() {
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n < maxInt(v.Type().Bits()) {
			v.SetInt(n + 1)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := v.Uint()
		if n < maxUint(v.Type().Bits()) {
			v.SetUint(n + 1)
		}
	}
}

func maxInt(bits int) int64 {
	return int64(1)<<(bits-1) - 1
}

func maxUint(bits int) uint64 {
	if bits == 64 {
		return ^uint64(0)
	}
	return uint64(1)<<bits - 1
}

// coercible reports whether setValue can handle t. Used by tag
// validation so unsupported field types fail at derivation, not
// mid-scan.
func coercible(t reflect.Type) bool {
	if t.Implements(argValueType) || reflect.PointerTo(t).Implements(argValueType) {
		return true
	}
	if t.Implements(textUnmarshalerType) || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice:
		return coercible(t.Elem())
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// switchable reports whether t can back a switch: bool set-to-true or
// integer counter.
func switchable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
