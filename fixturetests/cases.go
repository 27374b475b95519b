package fixturetests

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultPattern selects YAML files at any depth.
const DefaultPattern = "**.{yml,yaml}"

const expectedExtension = ".json"

// Case is one fixture: an input file and, optionally, the file holding its expected output.
type Case struct {
	Name         string
	InputPath    string
	ExpectedPath string
}

// String returns the path of the input relative to the fixture directory, which is what
// appears in test names.
func (c Case) String() string {
	return c.Name
}

// HasExpected returns true if the case has an expected output file.
func (c Case) HasExpected() bool {
	return c.ExpectedPath != ""
}

// ListCases finds every file under dir whose slash-separated relative path matches pattern.
// Cases are sorted by name.
func ListCases(dir, pattern string) ([]Case, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid fixture pattern %q: %w", pattern, err)
	}

	var cases []Case
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if !g.Match(name) {
			return nil
		}
		c := Case{Name: name, InputPath: path}
		expected := strings.TrimSuffix(path, filepath.Ext(path)) + expectedExtension
		if expected != path {
			if info, err := os.Stat(expected); err == nil && !info.IsDir() {
				c.ExpectedPath = expected
			}
		}
		cases = append(cases, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases, nil
}
