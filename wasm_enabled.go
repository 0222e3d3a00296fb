//go:build js && wasm

package main

// WriteFile does nothing in the browser, there is no disk to record
// playthroughs to.
func WriteFile(name string, data []byte) {
}
