package factorytest

// Class is a registration table of factories and the tests that consume their values.
//
// NewInstance, if set, is called once per unit to create the value returned by T.Instance,
// so that tests which need fresh state get their own copy. Factories never receive an
// instance.
type Class struct {
	Name        string
	NewInstance func() interface{}
	Factories   []Factory
	Tests       []Test
}

// Factory produces the parameter values for a Class.
//
// Only Func can be called without an instance of the class. Method describes a factory that
// needs an instance; such a factory cannot be used, and registering one makes Expand fail with
// a ConfigurationError.
type Factory struct {
	Name   string
	Func   func() (interface{}, error)
	Method func(instance interface{}) (interface{}, error)
}

// Test is run once for every value produced by the factories of its Class.
type Test struct {
	Name string
	Func func(t *T, value interface{})
}

// NewClass creates an empty Class.
func NewClass(name string, newInstance func() interface{}) *Class {
	return &Class{Name: name, NewInstance: newInstance}
}

// AddFactory registers a factory that is called without an instance.
func (c *Class) AddFactory(name string, fn func() (interface{}, error)) *Class {
	c.Factories = append(c.Factories, Factory{Name: name, Func: fn})
	return c
}

// AddValues registers a factory that always returns the given values.
func (c *Class) AddValues(name string, values ...interface{}) *Class {
	return c.AddFactory(name, func() (interface{}, error) {
		return Values(values), nil
	})
}

// AddTest registers a test that takes one parameter value.
func (c *Class) AddTest(name string, fn func(t *T, value interface{})) *Class {
	c.Tests = append(c.Tests, Test{Name: name, Func: fn})
	return c
}

func (c *Class) validate() error {
	for _, f := range c.Factories {
		if f.Func == nil {
			reason := "has no function"
			if f.Method != nil {
				reason = "requires an instance of the class; factories must be callable without one"
			}
			return &ConfigurationError{Class: c.Name, Method: f.Name, Reason: reason}
		}
	}
	for _, t := range c.Tests {
		if t.Func == nil {
			return &ConfigurationError{Class: c.Name, Method: t.Name, Reason: "has no function"}
		}
	}
	return nil
}
