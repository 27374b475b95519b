// Package fixturetests is a factory-test suite over a directory of YAML fixtures.
//
// Its factory lists the fixture cases found in the directory, and each factory test runs
// once per case: "parses" checks that the input is valid YAML, and "converts" checks that
// the YAML converted to JSON matches the case's expected JSON output file.
//
// The expansion and naming of the individual tests is done by the lower-level factorytest
// package; running them and reporting results is done by the framework package.
package fixturetests
