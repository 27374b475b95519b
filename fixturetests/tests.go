package fixturetests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aryann/difflib"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/launchdarkly/factory-tests/factorytest"
)

func requireCase(t *factorytest.T, value interface{}) Case {
	c, ok := value.(Case)
	require.True(t, ok, "fixture test was given a %T instead of a Case", value)
	return c
}

func readFile(t *factorytest.T, path string) []byte {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

// DoParseTest checks that the input of a case is valid YAML.
func DoParseTest(t *factorytest.T, value interface{}) {
	c := requireCase(t, value)
	data := readFile(t, c.InputPath)
	var doc interface{}
	assert.NoError(t, yaml.Unmarshal(data, &doc), "could not parse %s", c.Name)
}

// DoConvertTest checks that the input of a case, converted to JSON, is structurally equal to
// the expected output. Cases with no expected output are skipped.
func DoConvertTest(t *factorytest.T, value interface{}) {
	c := requireCase(t, value)
	if !c.HasExpected() {
		t.Skip("no expected output file")
	}
	input := readFile(t, c.InputPath)
	expectedJSON := readFile(t, c.ExpectedPath)

	actualJSON, err := yaml.YAMLToJSON(input)
	require.NoError(t, err, "could not convert %s to JSON", c.Name)
	t.Debug("converted JSON: %s", actualJSON)

	require.True(t, json.Valid(expectedJSON), "expected output %s is not valid JSON", c.ExpectedPath)
	expected := ldvalue.Parse(expectedJSON)
	actual := ldvalue.Parse(actualJSON)

	if !actual.Equal(expected) {
		assert.Fail(t, "converted output does not match expected output",
			"%s\n%s", c.ExpectedPath, renderDiff(indentJSON(expectedJSON), indentJSON(actualJSON)))
	}
}

func indentJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", "  "); err != nil {
		return string(data)
	}
	return buf.String()
}

// renderDiff shows lines only in the expected output with "-" and lines only in the actual
// output with "+".
func renderDiff(expected, actual string) string {
	var out strings.Builder
	for _, d := range difflib.Diff(strings.Split(expected, "\n"), strings.Split(actual, "\n")) {
		switch d.Delta {
		case difflib.LeftOnly:
			fmt.Fprintf(&out, "- %s\n", d.Payload)
		case difflib.RightOnly:
			fmt.Fprintf(&out, "+ %s\n", d.Payload)
		case difflib.Common:
			fmt.Fprintf(&out, "  %s\n", d.Payload)
		}
	}
	return out.String()
}
