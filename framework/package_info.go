// Package framework contains the low-level test execution infrastructure that runs expanded
// factory tests outside of the Go test runner.
//
// The general model is:
//
// 1. A test run is started with Run, which gives the caller a root Context.
//
// 2. A Context is similar to Go's *testing.T: subtests are started with Context.Run (or
// Context.Group for containers of other subtests), failures are reported with Errorf and
// FailNow, and any panic inside a test is recovered and recorded as a failure.
//
// 3. Progress is reported as it happens through a TestLogger, and the final outcome of
// every test is returned in Results.
//
// Domain-specific code decides what the tests are; the factorytest package decides how a
// factory's values are expanded into individual tests.
package framework
