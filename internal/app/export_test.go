// export_test.go exports private functions for white-box testing.
package app

// MergeBuildOptions exposes mergeBuildOptions for tests.
var MergeBuildOptions = mergeBuildOptions
