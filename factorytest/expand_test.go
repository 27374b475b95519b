package factorytest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopTest(t *T, value interface{}) {}

func unitNames(units []Unit) []string {
	var names []string
	for _, u := range units {
		names = append(names, u.Name())
	}
	return names
}

func unitValues(units []Unit) []interface{} {
	var values []interface{}
	for _, u := range units {
		values = append(values, u.Value())
	}
	return values
}

func TestExpandSliceFactory(t *testing.T) {
	c := NewClass("numbers", nil).
		AddFactory("values", func() (interface{}, error) { return []int{1, 2, 3}, nil }).
		AddTest("checkValue", noopTest)

	units, err := Expand(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"checkValue[1]", "checkValue[2]", "checkValue[3]"}, unitNames(units))
	assert.Equal(t, []interface{}{1, 2, 3}, unitValues(units))
	for _, u := range units {
		assert.Equal(t, "checkValue", u.TestName())
		assert.Equal(t, "values", u.Factory())
	}
}

func TestExpandScalarFactory(t *testing.T) {
	c := NewClass("scalar", nil).
		AddFactory("value", func() (interface{}, error) { return "x", nil }).
		AddTest("a", noopTest).
		AddTest("b", noopTest)

	units, err := Expand(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"a[x]", "b[x]"}, unitNames(units))
}

func TestExpandNamesNilValuesWithoutCallingTheirMethods(t *testing.T) {
	c := NewClass("nils", nil).
		AddFactory("values", func() (interface{}, error) {
			return []interface{}{(*label)(nil), (*failure)(nil), &label{"x"}}, nil
		}).
		AddTest("check", noopTest)

	units, err := Expand(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"check[<nil>]", "check[<nil>]#01", "check[label:x]"}, unitNames(units))
}

func TestExpandOrdersByValueThenTest(t *testing.T) {
	c := NewClass("order", nil).
		AddValues("letters", "p", "q").
		AddTest("m0", noopTest).
		AddTest("m1", noopTest)

	units, err := Expand(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"m0[p]", "m1[p]", "m0[q]", "m1[q]"}, unitNames(units))
}

func TestExpandProducesValuesTimesTests(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		for _, m := range []int{0, 1, 3} {
			values := make([]int, n)
			for i := range values {
				values[i] = i
			}
			c := NewClass("grid", nil).
				AddFactory("values", func() (interface{}, error) { return values, nil })
			for i := 0; i < m; i++ {
				c.AddTest(string(rune('a'+i)), noopTest)
			}
			units, err := Expand(c)
			require.NoError(t, err)
			assert.Len(t, units, n*m, "values=%d tests=%d", n, m)
		}
	}
}

func TestExpandMultipleFactoriesInRegistrationOrder(t *testing.T) {
	c := NewClass("multi", nil).
		AddValues("first", 1, 2).
		AddValues("second", "z").
		AddTest("check", noopTest)

	units, err := Expand(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"check[1]", "check[2]", "check[z]"}, unitNames(units))
	assert.Equal(t, "first", units[0].Factory())
	assert.Equal(t, "second", units[2].Factory())
}

func TestExpandIterableFactory(t *testing.T) {
	c := NewClass("countdown", nil).
		AddFactory("values", func() (interface{}, error) { return countdown(3), nil }).
		AddTest("tick", noopTest)

	units, err := Expand(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"tick[3]", "tick[2]", "tick[1]"}, unitNames(units))
}

func TestExpandEmptyFactoryProducesNoUnits(t *testing.T) {
	c := NewClass("empty", nil).
		AddFactory("values", func() (interface{}, error) { return []string{}, nil }).
		AddTest("never", noopTest)

	units, err := Expand(c)
	require.NoError(t, err)
	assert.Len(t, units, 0)
}

func TestExpandDisambiguatesRepeatedNames(t *testing.T) {
	c := NewClass("repeats", nil).
		AddValues("values", 1, 1, 2, 1).
		AddTest("a", noopTest)

	units, err := Expand(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"a[1]", "a[1]#01", "a[2]", "a[1]#02"}, unitNames(units))
}

func TestExpandRejectsInstanceFactoryBeforeInvokingAnything(t *testing.T) {
	invoked := false
	c := &Class{
		Name: "broken",
		Factories: []Factory{
			{Name: "good", Func: func() (interface{}, error) {
				invoked = true
				return 1, nil
			}},
			{Name: "needsInstance", Method: func(interface{}) (interface{}, error) { return 2, nil }},
		},
		Tests: []Test{{Name: "check", Func: noopTest}},
	}

	units, err := Expand(c)
	assert.Nil(t, units)
	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce), "expected ConfigurationError, got %T", err)
	assert.Equal(t, "broken", ce.Class)
	assert.Equal(t, "needsInstance", ce.Method)
	assert.Contains(t, err.Error(), "needsInstance")
	assert.False(t, invoked)
}

func TestExpandRejectsTestWithoutFunction(t *testing.T) {
	c := NewClass("broken", nil).AddValues("values", 1)
	c.Tests = append(c.Tests, Test{Name: "missing"})

	_, err := Expand(c)
	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "missing", ce.Method)
}

func TestExpandWrapsFactoryError(t *testing.T) {
	cause := errors.New("no fixtures here")
	c := NewClass("failing", nil).
		AddValues("fine", 1).
		AddFactory("values", func() (interface{}, error) { return nil, cause }).
		AddTest("check", noopTest)

	units, err := Expand(c)
	assert.Nil(t, units)
	var fe *FactoryInvocationError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "values", fe.Factory)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "values")
	assert.Contains(t, err.Error(), "no fixtures here")
}

func TestExpandWrapsFactoryPanic(t *testing.T) {
	cause := errors.New("boom")
	c := NewClass("panicking", nil).
		AddFactory("values", func() (interface{}, error) { panic(cause) }).
		AddTest("check", noopTest)

	_, err := Expand(c)
	var fe *FactoryInvocationError
	require.True(t, errors.As(err, &fe))
	var pe *PanicError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, cause, pe.Value)
	assert.True(t, errors.Is(err, cause))
}

func TestExpandWrapsPanicWithNonErrorValue(t *testing.T) {
	c := NewClass("panicking", nil).
		AddFactory("values", func() (interface{}, error) { panic("not an error") }).
		AddTest("check", noopTest)

	_, err := Expand(c)
	var pe *PanicError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "not an error", pe.Value)
	assert.Nil(t, pe.Unwrap())
	assert.Contains(t, err.Error(), "panic: not an error")
}

func TestExpandRejectsNilResult(t *testing.T) {
	c := NewClass("nil", nil).
		AddFactory("values", func() (interface{}, error) { return nil, nil }).
		AddTest("check", noopTest)

	_, err := Expand(c)
	assert.True(t, errors.Is(err, ErrNilResult))
}

func TestUnitInvokeBindsValueAndFreshInstance(t *testing.T) {
	type fixture struct{ calls int }
	var seen []interface{}
	var instances []*fixture
	c := NewClass("bound", func() interface{} { return &fixture{} }).
		AddValues("values", "a", "b").
		AddTest("record", func(t *T, value interface{}) {
			f := t.Instance().(*fixture)
			f.calls++
			instances = append(instances, f)
			seen = append(seen, value)
			assert.Equal(t, value, t.Value())
		})

	units, err := Expand(c)
	require.NoError(t, err)
	for _, u := range units {
		u.Invoke(t)
	}
	assert.Equal(t, []interface{}{"a", "b"}, seen)
	require.Len(t, instances, 2)
	assert.NotSame(t, instances[0], instances[1])
	assert.Equal(t, 1, instances[0].calls)
	assert.Equal(t, 1, instances[1].calls)
}
