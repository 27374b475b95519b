package fixturetests

import (
	"github.com/launchdarkly/factory-tests/factorytest"
	"github.com/launchdarkly/factory-tests/framework"
)

// ClassName is the name of the test class, and so the first element of every test ID.
const ClassName = "fixtures"

// NewClass returns the factory-test class for the fixtures under dir that match pattern.
// The factory reports what it found to debugLogger, which may be nil.
func NewClass(dir, pattern string, debugLogger framework.Logger) *factorytest.Class {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	return factorytest.NewClass(ClassName, nil).
		AddFactory("cases", func() (interface{}, error) {
			cases, err := ListCases(dir, pattern)
			if err != nil {
				return nil, err
			}
			debugLogger.Printf("Found %d fixture cases in %s", len(cases), dir)
			return cases, nil
		}).
		AddTest("parses", DoParseTest).
		AddTest("converts", DoConvertTest)
}

// RunTestSuite runs every fixture test and returns the results.
func RunTestSuite(
	dir string,
	pattern string,
	filter framework.Filter,
	testLogger framework.TestLogger,
	debugLogger framework.Logger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		factorytest.RunContext(c, NewClass(dir, pattern, debugLogger))
	})
}

// ListTests returns the names of every test in the suite without running any of them.
func ListTests(dir, pattern string) ([]framework.TestID, error) {
	units, err := factorytest.Expand(NewClass(dir, pattern, nil))
	if err != nil {
		return nil, err
	}
	ids := make([]framework.TestID, 0, len(units))
	for _, u := range units {
		ids = append(ids, framework.TestID{Path: []string{ClassName, u.Name()}})
	}
	return ids, nil
}
