package factorytest

import "reflect"

// Values is an ordered sequence of parameter values.
type Values []interface{}

// Single wraps one value as a sequence of one, even if the value is itself a slice.
func Single(value interface{}) Values {
	return Values{value}
}

// Iterable can be returned by a factory that produces its values one at a time. Iterate
// calls yield for each value in order and stops early if yield returns false.
type Iterable interface {
	Iterate(yield func(value interface{}) bool)
}

// Normalize turns the result of a factory into a sequence of values.
//
// Slices and arrays contribute their elements in index order. An Iterable, a channel (read
// until it is closed) or a range-over-func sequence such as iter.Seq contributes the values it
// yields. Anything else, including strings and maps, is a single value.
func Normalize(result interface{}) Values {
	if values, ok := result.(Values); ok {
		return values
	}
	if it, ok := result.(Iterable); ok {
		var values Values
		it.Iterate(func(value interface{}) bool {
			values = append(values, value)
			return true
		})
		return values
	}

	rv := reflect.ValueOf(result)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make(Values, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			values = append(values, rv.Index(i).Interface())
		}
		return values
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir == 0 {
			break
		}
		var values Values
		if rv.IsNil() {
			return values
		}
		for {
			v, ok := rv.Recv()
			if !ok {
				return values
			}
			values = append(values, v.Interface())
		}
	case reflect.Func:
		if isSeq(rv.Type()) && !rv.IsNil() {
			return collectSeq(rv)
		}
	}
	return Values{result}
}

// isSeq matches func(yield func(V) bool), the shape of iter.Seq[V].
func isSeq(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 && !yield.IsVariadic() &&
		yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool
}

func collectSeq(seq reflect.Value) Values {
	var values Values
	yieldType := seq.Type().In(0)
	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		values = append(values, args[0].Interface())
		return []reflect.Value{reflect.ValueOf(true).Convert(yieldType.Out(0))}
	})
	seq.Call([]reflect.Value{yield})
	return values
}
