// Package main starts the input message receiver.
package main

import "flag"

// main is the entrypoint for the input message receiver.
func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
