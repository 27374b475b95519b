package factorytest

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DisplayName returns the name of the unit that runs the named test with value.
func DisplayName(testName string, value interface{}) string {
	return fmt.Sprintf("%s[%s]", testName, Render(value))
}

// Render returns a deterministic text form of a parameter value. Pointers are rendered as the
// value they point to rather than as an address, at any depth, so names are stable from one
// run to the next. A nil pointer or interface is "<nil>", even if its type has a String or
// Error method.
func Render(value interface{}) string {
	r := renderer{visiting: make(map[uintptr]bool)}
	return r.render(reflect.ValueOf(value))
}

type renderer struct {
	visiting map[uintptr]bool
}

func (r renderer) render(rv reflect.Value) string {
	if !rv.IsValid() {
		return "<nil>"
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "<nil>"
		}
	}

	if rv.CanInterface() {
		switch v := rv.Interface().(type) {
		case string:
			return v
		case ldvalue.Value:
			return v.JSONString()
		case error:
			if s, ok := callString(v.Error); ok {
				return s
			}
		case fmt.Stringer:
			if s, ok := callString(v.String); ok {
				return s
			}
		}
	}

	switch rv.Kind() {
	case reflect.Ptr:
		p := rv.Pointer()
		if r.visiting[p] {
			return "&<cycle>"
		}
		r.visiting[p] = true
		defer delete(r.visiting, p)
		return "&" + r.render(rv.Elem())
	case reflect.Interface:
		return r.render(rv.Elem())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(rv.Complex())
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = r.render(rv.Index(i))
		}
		return "[" + strings.Join(parts, " ") + "]"
	case reflect.Map:
		keys := rv.MapKeys()
		sortKeys(keys, r)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = r.render(k) + ":" + r.render(rv.MapIndex(k))
		}
		return "map[" + strings.Join(parts, " ") + "]"
	case reflect.Struct:
		t := rv.Type()
		parts := make([]string, rv.NumField())
		for i := range parts {
			parts[i] = t.Field(i).Name + ":" + r.render(rv.Field(i))
		}
		return "{" + strings.Join(parts, " ") + "}"
	}
	// funcs, channels and unsafe pointers have nothing but an address to show
	return rv.Type().String()
}

// callString calls a String or Error method, reporting false if it panics; a method with a
// value receiver can still panic when it reaches a nil field.
func callString(f func() string) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return f(), true
}

// sortKeys orders map keys the way fmt does for keys of a basic kind, and by their rendering
// otherwise.
func sortKeys(keys []reflect.Value, r renderer) {
	if len(keys) == 0 {
		return
	}
	var less func(a, b reflect.Value) bool
	switch keys[0].Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		less = func(a, b reflect.Value) bool { return a.Int() < b.Int() }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		less = func(a, b reflect.Value) bool { return a.Uint() < b.Uint() }
	case reflect.Float32, reflect.Float64:
		less = func(a, b reflect.Value) bool { return a.Float() < b.Float() }
	case reflect.String:
		less = func(a, b reflect.Value) bool { return a.String() < b.String() }
	case reflect.Bool:
		less = func(a, b reflect.Value) bool { return !a.Bool() && b.Bool() }
	default:
		rendered := make(map[int]string, len(keys))
		for i, k := range keys {
			rendered[i] = r.render(k)
		}
		idx := make([]int, len(keys))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(i, j int) bool { return rendered[idx[i]] < rendered[idx[j]] })
		sorted := make([]reflect.Value, len(keys))
		for i, j := range idx {
			sorted[i] = keys[j]
		}
		copy(keys, sorted)
		return
	}
	sort.SliceStable(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
}
