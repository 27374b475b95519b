package factorytest

// TestingT is the part of a test runner's per-test handle that a unit needs. It is satisfied by
// *testing.T and *framework.Context, and matches the TestingT interface of testify's require
// package.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

// Unit is one runnable test: a Test bound to a single value from a factory.
type Unit struct {
	name        string
	test        Test
	value       interface{}
	factory     string
	newInstance func() interface{}
}

// Name returns the display name of the unit, such as "checkValue[1]".
func (u Unit) Name() string { return u.name }

// TestName returns the name of the registered Test.
func (u Unit) TestName() string { return u.test.Name }

// Factory returns the name of the factory that produced the value.
func (u Unit) Factory() string { return u.factory }

// Value returns the bound parameter value.
func (u Unit) Value() interface{} { return u.value }

// Invoke runs the test with its bound value, reporting failures to t.
func (u Unit) Invoke(t TestingT) {
	u.invoke(&T{t: t, unit: u})
}

func (u Unit) invoke(t *T) {
	if u.newInstance != nil {
		t.instance = u.newInstance()
	}
	u.test.Func(t, u.value)
}

// T is passed to a Test. It can be given to testify's assert and require functions in place of
// a *testing.T.
type T struct {
	t        TestingT
	unit     Unit
	instance interface{}
	skip     func(reason string)
	debug    func(format string, args ...interface{})
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.t.Errorf(format, args...)
}

func (t *T) FailNow() {
	t.t.FailNow()
}

// Skip stops the test and reports it as skipped. If the runner has no notion of skipping, the
// test fails instead.
func (t *T) Skip(reason string) {
	if t.skip != nil {
		t.skip(reason)
		return
	}
	t.t.Errorf("test was skipped, but the runner does not support skipping: %s", reason)
	t.t.FailNow()
}

// Debug records debug output for the test. It is discarded if the runner has nowhere to put it.
func (t *T) Debug(format string, args ...interface{}) {
	if t.debug != nil {
		t.debug(format, args...)
	}
}

// Instance returns the value created by the Class's NewInstance for this unit, or nil.
func (t *T) Instance() interface{} { return t.instance }

// Value returns the parameter value the test is running with.
func (t *T) Value() interface{} { return t.unit.value }

// Name returns the display name of the unit.
func (t *T) Name() string { return t.unit.name }
