package fixturetests

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/factory-tests/factorytest"
	"github.com/launchdarkly/factory-tests/framework"
)

func testIDs(results []framework.TestResult) []string {
	var ids []string
	for _, r := range results {
		ids = append(ids, r.TestID.String())
	}
	return ids
}

func TestSuitePassesForMatchingFixtures(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"list.yml":    "items:\n  - 1\n  - two\n",
		"list.json":   `{"items": [1, "two"]}`,
		"scalar.yaml": "name: x\n",
	})

	results := RunTestSuite(dir, "", nil, nil, framework.LoggerFunc(t.Logf))

	assert.True(t, results.OK(), "failures: %v", testIDs(results.Failures))
	assert.Equal(t, []string{
		"fixtures/parses[list.yml]",
		"fixtures/converts[list.yml]",
		"fixtures/parses[scalar.yaml]",
		"fixtures/converts[scalar.yaml]",
	}, testIDs(results.Tests))
	passed, skipped, failed := results.Count()
	assert.Equal(t, 3, passed)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 0, failed)
}

func TestSuiteReportsMismatchWithDiff(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"wrong.yml":  "a: 1\nb: 2\n",
		"wrong.json": `{"a": 1, "b": 3}`,
	})

	results := RunTestSuite(dir, "", nil, nil, nil)

	require.Equal(t, []string{"fixtures/converts[wrong.yml]"}, testIDs(results.Failures))
	require.NotEmpty(t, results.Failures[0].Errors)
	message := results.Failures[0].Errors[0].Error()
	assert.Contains(t, message, `-   "b": 3`)
	assert.Contains(t, message, "+")
}

func TestSuiteReportsInvalidYAML(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"broken.yml": "a: [1, 2\n",
		"fine.yml":   "a: 1\n",
	})

	results := RunTestSuite(dir, "", nil, nil, nil)

	assert.Contains(t, testIDs(results.Failures), "fixtures/parses[broken.yml]")
	assert.NotContains(t, testIDs(results.Failures), "fixtures/parses[fine.yml]")
}

func TestSuiteFailsWholeClassWhenDirectoryIsMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	results := RunTestSuite(missing, "", nil, nil, nil)

	require.Equal(t, []string{ClassName}, testIDs(results.Failures))
	assert.True(t, strings.Contains(results.Failures[0].Errors[0].Error(), "cases"))
}

func TestListTests(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"one.yml":     "a: 1",
		"sub/two.yml": "b: 2",
	})

	ids, err := ListTests(dir, "")
	require.NoError(t, err)
	var names []string
	for _, id := range ids {
		names = append(names, id.String())
	}
	assert.Equal(t, []string{
		"fixtures/parses[one.yml]",
		"fixtures/converts[one.yml]",
		"fixtures/parses[sub/two.yml]",
		"fixtures/converts[sub/two.yml]",
	}, names)
}

func TestListTestsReturnsFactoryError(t *testing.T) {
	_, err := ListTests(filepath.Join(t.TempDir(), "missing"), "")
	var fe *factorytest.FactoryInvocationError
	assert.True(t, errors.As(err, &fe))
}

func TestSuiteAsGoSubtests(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"doc.yml":  "k: [1, 2]\n",
		"doc.json": `{"k": [1, 2]}`,
	})

	factorytest.Run(t, NewClass(dir, "", framework.LoggerFunc(t.Logf)))
}
