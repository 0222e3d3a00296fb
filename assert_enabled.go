//go:build assert_enabled

package main

// Assert crashes if condition is false. Asserts are compiled in only with
// the assert_enabled tag, so they can be as slow as they need to be.
func Assert(condition bool) {
	if !condition {
		panic("assert failed")
	}
}
