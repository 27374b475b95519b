// Package factorytest runs parameterized tests whose parameters come from factories.
//
// A Class registers two kinds of functions. A Factory is called once, without any instance
// of the class, and returns the values to test with. A Test takes exactly one of those values
// and is run once per value. Expand turns a Class into the cross product of every produced
// value with every registered test, in order:
//
//	c := factorytest.NewClass("numbers", nil).
//		AddFactory("values", func() (interface{}, error) {
//			return []int{1, 2, 3}, nil
//		}).
//		AddTest("checkValue", func(t *factorytest.T, value interface{}) {
//			assert.Less(t, value.(int), 10)
//		})
//
// which yields the units checkValue[1], checkValue[2] and checkValue[3]. The units can be
// run as Go subtests with Run, or inside the framework package's test runner with RunContext.
package factorytest
