package factorytest

import "fmt"

// Expand computes the units for a Class: every value produced by every factory, bound in turn
// to every test. Units are ordered by factory, then by value, then by test, each in the order
// it was registered or produced.
//
// Nothing is invoked if the Class is misconfigured; the error is then a *ConfigurationError.
// If a factory fails, the error is a *FactoryInvocationError and no units are returned.
func Expand(c *Class) ([]Unit, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	var units []Unit
	seen := make(map[string]int)
	for _, f := range c.Factories {
		values, err := invokeFactory(c, f)
		if err != nil {
			return nil, err
		}
		for _, value := range values {
			for _, test := range c.Tests {
				units = append(units, Unit{
					name:        uniqueName(seen, DisplayName(test.Name, value)),
					test:        test,
					value:       value,
					factory:     f.Name,
					newInstance: c.NewInstance,
				})
			}
		}
	}
	return units, nil
}

func invokeFactory(c *Class, f Factory) (values Values, err error) {
	defer func() {
		if r := recover(); r != nil {
			values = nil
			err = &FactoryInvocationError{Class: c.Name, Factory: f.Name, Cause: newPanicError(r)}
		}
	}()

	result, err := f.Func()
	if err != nil {
		return nil, &FactoryInvocationError{Class: c.Name, Factory: f.Name, Cause: err}
	}
	if result == nil {
		return nil, &FactoryInvocationError{Class: c.Name, Factory: f.Name, Cause: ErrNilResult}
	}
	return Normalize(result), nil
}

// uniqueName adds a "#01"-style suffix to repeats of a name, the way "go test" does for
// subtests.
func uniqueName(seen map[string]int, name string) string {
	n := seen[name]
	seen[name] = n + 1
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%s#%02d", name, n)
}
