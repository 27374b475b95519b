package factorytest

import (
	"testing"

	"github.com/launchdarkly/factory-tests/framework"
)

// RunContext runs each Class as a group within c, with one subtest per unit.
//
// If a Class cannot be expanded, the group for that Class fails with the expansion error and
// none of its units run. Other classes are not affected.
func RunContext(c *framework.Context, classes ...*Class) {
	for _, class := range classes {
		class := class
		c.Group(class.Name, func(c *framework.Context) {
			units, err := Expand(class)
			if err != nil {
				c.Errorf("%s", err)
				c.FailNow()
			}
			c.Debug("expanded %d units", len(units))
			for _, u := range units {
				u := u
				c.Run(u.Name(), func(c *framework.Context) {
					u.invoke(&T{
						t:     c,
						unit:  u,
						skip:  c.SkipWithReason,
						debug: c.DebugLogger().Printf,
					})
				})
			}
		})
	}
}

// Run runs each Class as a subtest of t, with one nested subtest per unit.
//
// If a Class cannot be expanded, the subtest for that Class fails with the expansion error.
func Run(t *testing.T, classes ...*Class) {
	t.Helper()
	for _, class := range classes {
		class := class
		t.Run(class.Name, func(t *testing.T) {
			units, err := Expand(class)
			if err != nil {
				t.Fatalf("%s", err)
			}
			for _, u := range units {
				u := u
				t.Run(u.Name(), func(t *testing.T) {
					u.invoke(&T{
						t:     t,
						unit:  u,
						skip:  func(reason string) { t.Skip(reason) },
						debug: t.Logf,
					})
				})
			}
		})
	}
}
