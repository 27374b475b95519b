package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of one running test or group of tests. It is similar to Go's
// *testing.T, but it runs outside of the Go test runner.
//
// A Context satisfies the TestingT interfaces of the testify assert and require packages,
// so it can be passed to their assertions directly.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run executes action as the root of a test run and returns the accumulated results of
// every test started with Context.Run.
//
// If filter is non-nil, tests whose ID it rejects are reported as skipped without running.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	if len(c.errors) != 0 {
		result := TestResult{TestID: c.id, Errors: c.errors}
		env.results.Tests = append(env.results.Tests, result)
		env.results.Failures = append(env.results.Failures, result)
	}
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
	}()

	action(c)
}

// ID returns the full path of the test.
func (c *Context) ID() TestID {
	return c.id
}

// Failed reports whether the test has failed so far.
func (c *Context) Failed() bool {
	return c.failed
}

// Run runs a subtest. The subtest's ID is this test's ID plus name. It returns false if the
// subtest failed.
//
// A failed subtest marks every enclosing test as failed too, the way testing.T does.
func (c *Context) Run(name string, action func(*Context)) bool {
	return c.runSubtest(name, action, false)
}

// Group runs a subtest whose only purpose is to contain other subtests. A group is never
// excluded by the filter, since the filter is meant to select the tests inside it, and it
// only appears in Results if it reports errors of its own.
func (c *Context) Group(name string, action func(*Context)) bool {
	return c.runSubtest(name, action, true)
}

func (c *Context) runSubtest(name string, action func(*Context), group bool) bool {
	id := c.id.Plus(name)

	c.env.testLogger.TestStarted(id)
	if !group && c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		c.env.results.Tests = append(c.env.results.Tests, TestResult{TestID: id, Skipped: true})
		return true
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)

	result := TestResult{TestID: id, Errors: c1.errors, Skipped: c1.skipped}
	record := !group || len(c1.errors) != 0
	if record {
		c.env.results.Tests = append(c.env.results.Tests, result)
	}
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
		return true
	}
	if c1.failed {
		if record {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
		c.failed = true
	}
	c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	return !c1.failed
}

// Errorf records a failure without stopping the test.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow stops the test immediately. If no failure was recorded, the test still fails.
func (c *Context) FailNow() {
	panic(c)
}

// Skip stops the test immediately and reports it as skipped.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

// SkipWithReason is like Skip, but the reason is passed on to the TestLogger.
func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug adds a line of debug output, which is passed to the TestLogger when the test finishes.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger that writes to the same debug output as Debug.
func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
